package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpbuild/cmd/wpbuild/commands"
	"go.trai.ch/wpbuild/internal/app"
	"go.trai.ch/wpbuild/internal/build"
	"go.trai.ch/wpbuild/internal/core/domain"
)

type mockApp struct {
	opts      *app.GlobalOptions
	runFunc   func(ctx context.Context, names []string) error
	watchFunc func(ctx context.Context) error
	tasks     []app.TaskInfo
}

func (m *mockApp) Configure(opts app.GlobalOptions) error {
	m.opts = &opts
	return nil
}

func (m *mockApp) Run(ctx context.Context, names []string) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, names)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx)
	}
	return nil
}

func (m *mockApp) Tasks() ([]app.TaskInfo, error) {
	return m.tasks, nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("passes tasks and global flags", func(t *testing.T) {
		var captured []string
		mock := &mockApp{
			runFunc: func(_ context.Context, names []string) error {
				captured = names
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "styles", "images", "-C", "theme", "--config", "theme.yaml", "--json"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"styles", "images"}, captured)
		require.NotNil(t, mock.opts)
		assert.Equal(t, app.GlobalOptions{Dir: "theme", Config: "theme.yaml", JSON: true}, *mock.opts)
	})

	t.Run("defaults the configuration file", func(t *testing.T) {
		mock := &mockApp{}
		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "build"})

		require.NoError(t, cli.Execute(context.Background()))
		require.NotNil(t, mock.opts)
		assert.Equal(t, domain.ConfigFileName, mock.opts.Config)
		assert.Empty(t, mock.opts.Dir)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, []string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "styles"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no tasks provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, []string) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("help describes jpeg handling", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run", "--help"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "JPEG files are not re-encoded")
	})
}

func TestCommands_Watch(t *testing.T) {
	for _, name := range []string{"watch", "default", "dev"} {
		t.Run(name, func(t *testing.T) {
			called := false
			mock := &mockApp{
				watchFunc: func(context.Context) error {
					called = true
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs([]string{name})

			require.NoError(t, cli.Execute(context.Background()))
			assert.True(t, called)
		})
	}
}

func TestCommands_Tasks(t *testing.T) {
	mock := &mockApp{tasks: []app.TaskInfo{
		{Name: "build", Kind: "series", Description: "Initial build", Children: []string{"styles", "images"}},
		{Name: "styles", Kind: "leaf", Description: "Compile stylesheets"},
	}}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"tasks"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "build   Initial build (series: styles, images)")
	assert.Contains(t, buf.String(), "styles  Compile stylesheets")
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
	assert.Nil(t, mock.opts, "version does not touch the project")
}

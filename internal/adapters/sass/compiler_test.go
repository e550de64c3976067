package sass_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bep/godartsass/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpbuild/internal/adapters/sass"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/wpbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func requireDartSass(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sass"); err != nil {
		t.Skip("dart sass not installed")
	}
	if _, err := godartsass.Version("sass"); err != nil {
		t.Skip("sass on PATH does not speak the embedded protocol")
	}
}

func TestCompiler_PlainCSSUsesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	fallback := mocks.NewMockStyleCompiler(ctrl)

	req := ports.StyleRequest{Path: "/project/assets/css/style.css", Output: "/project/style.css"}
	fallback.EXPECT().Compile(gomock.Any(), req).Return(ports.StyleResult{CSS: []byte("a{}")}, nil)

	c := sass.NewCompiler(nil, fallback)
	t.Cleanup(func() { _ = c.Close() })

	res, err := c.Compile(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, "a{}", string(res.CSS))
}

func TestCompiler_MissingBinary(t *testing.T) {
	root := filepath.Join(t.TempDir(), "style.scss")
	writeFile(t, root, "body { margin: 0; }\n")

	c := sass.NewCompiler(nil, nil, sass.WithBinary(filepath.Join(t.TempDir(), "no-such-sass")))
	t.Cleanup(func() { _ = c.Close() })

	_, err := c.Compile(t.Context(), ports.StyleRequest{Path: root})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestCompiler_MissingSource(t *testing.T) {
	c := sass.NewCompiler(nil, nil)

	_, err := c.Compile(t.Context(), ports.StyleRequest{Path: filepath.Join(t.TempDir(), "nope.scss")})
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestCompiler_CompilesPartials(t *testing.T) {
	requireDartSass(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "_header.scss"), "$brand: #c00;\n.header { color: $brand; }\n")
	writeFile(t, filepath.Join(dir, "_footer.scss"), ".footer { .link { color: blue; } }\n")
	root := filepath.Join(dir, "style.scss")
	writeFile(t, root, "@use 'header';\n@use 'footer';\n")

	c := sass.NewCompiler(nil, nil)
	t.Cleanup(func() { _ = c.Close() })

	res, err := c.Compile(t.Context(), ports.StyleRequest{Path: root, OutputStyle: "expanded", Precision: 10})
	require.NoError(t, err)

	css := string(res.CSS)
	assert.Contains(t, css, ".header")
	assert.Contains(t, css, ".footer .link")
	assert.Less(t, strings.Index(css, ".header"), strings.Index(css, ".footer"))
	assert.Contains(t, string(res.SourceMap), "_header.scss")
}

func TestCompiler_SyntaxError(t *testing.T) {
	requireDartSass(t)

	root := filepath.Join(t.TempDir(), "style.scss")
	writeFile(t, root, ".broken { color: red\n")

	c := sass.NewCompiler(nil, nil)
	t.Cleanup(func() { _ = c.Close() })

	_, err := c.Compile(t.Context(), ports.StyleRequest{Path: root})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompile)
}

package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpbuild/internal/adapters/logger"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("Starting 'styles'...")
	lg.Warn("NO EXISTING VENDORS IN VENDORS ARRAY, NO VENDOR GENERATION")

	g := goldie.New(t)
	g.Assert(t, "info_warn", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "classified chain with metadata",
			err: domain.Classify(domain.ErrCompile, zerr.With(
				zerr.Wrap(errors.New("expected \";\"\n  line 3"), "failed to compile stylesheet"),
				"path", "assets/scss/style.scss",
			)),
			goldenName: "error_compile_chain",
		},
		{
			name: "joined errors",
			err: errors.Join(
				zerr.Wrap(errors.New("boom"), "styles"),
				zerr.Wrap(errors.New("bang"), "images"),
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.Wrap(errors.New("disk full"), "failed to write"), "path", "style.css"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "failed to write: disk full", record["msg"])

	chain, ok := record["chain"].([]any)
	require.True(t, ok)
	require.Len(t, chain, 2)
	first, ok := chain[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "failed to write", first["message"])
	assert.Equal(t, map[string]any{"path": "style.css"}, first["metadata"])
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	assert.True(t, json.Valid(buf.Bytes()), "expected JSON output, got %q", buf.String())
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("plain"),
			want: []logger.ErrorEntry{{Message: "plain"}},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{}},
				{Message: "middle", Metadata: map[string]any{}},
				{Message: "root"},
			},
		},
		{
			name: "metadata on plain error moves to the cause",
			err:  zerr.With(errors.New("timeout"), "path", "a.png"),
			want: []logger.ErrorEntry{
				{Message: "timeout", Metadata: map[string]any{"path": "a.png"}},
			},
		},
		{
			name: "category frame",
			err:  domain.Classify(domain.ErrIO, zerr.Wrap(errors.New("denied"), "failed to write")),
			want: []logger.ErrorEntry{
				{Message: "io error"},
				{Message: "failed to write", Metadata: map[string]any{}},
				{Message: "denied"},
			},
		},
		{
			name: "stdlib wrapping stops the walk",
			err:  fmt.Errorf("outer: %w", zerr.New("inner")),
			want: []logger.ErrorEntry{{Message: "outer: inner"}},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name:    "multiline cause",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2"}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

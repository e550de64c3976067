package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpbuild/internal/adapters/watcher"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/wpbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

// collect forwards events to a channel so tests can wait with a timeout.
func collect(w *watcher.Watcher) <-chan ports.WatchEvent {
	ch := make(chan ports.WatchEvent, 64)
	go func() {
		defer close(ch)
		for ev := range w.Events() {
			ch <- ev
		}
	}()
	return ch
}

func waitFor(t *testing.T, ch <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			require.True(t, ok, "event stream closed before %s", path)
			if ev.Path == path {
				return ev
			}
		case <-timeout:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "scss"), domain.DirPerm))

	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), root))
	events := collect(w)

	file := filepath.Join(root, "assets", "scss", "style.scss")
	require.NoError(t, os.WriteFile(file, []byte("body{}"), domain.FilePerm))

	ev := waitFor(t, events, file)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()

	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), root))
	events := collect(w)

	dir := filepath.Join(root, "assets")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	waitFor(t, events, dir)

	file := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(file, []byte("x"), domain.FilePerm))
	waitFor(t, events, file)
}

func TestWatcher_SkipsStateDirectory(t *testing.T) {
	root := t.TempDir()
	state := filepath.Join(root, domain.StateDirName)
	require.NoError(t, os.Mkdir(state, domain.DirPerm))

	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), root))
	events := collect(w)

	require.NoError(t, os.WriteFile(filepath.Join(state, "cache.db"), []byte("x"), domain.FilePerm))
	marker := filepath.Join(root, "marker.php")
	require.NoError(t, os.WriteFile(marker, []byte("<?php"), domain.FilePerm))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			require.NotContains(t, ev.Path, domain.StateDirName)
			if ev.Path == marker {
				return
			}
		case <-timeout:
			t.Fatal("marker event not received")
		}
	}
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), t.TempDir()))
	events := collect(w)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after Stop")
	}

	assert.ErrorIs(t, w.Start(t.Context(), t.TempDir()), domain.ErrWatcherStopped)
}

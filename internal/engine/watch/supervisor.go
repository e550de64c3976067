// Package watch turns file system events into debounced task runs.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskRunner runs a named task of a graph.
type TaskRunner interface {
	Run(ctx context.Context, graph *domain.Graph, name string) error
}

// Supervisor feeds watcher events to the bindings that match them.
// Every binding debounces on its own and never runs its task twice at once.
// A failed run does not stop the supervisor.
type Supervisor struct {
	watcher ports.Watcher
	runner  TaskRunner
	logger  ports.Logger

	mu       sync.Mutex
	bindings []*binding
	stopped  bool
	inflight sync.WaitGroup
}

type binding struct {
	domain.WatchBinding
	debouncer *Debouncer
	// running serializes the runs of this binding.
	running sync.Mutex
}

// NewSupervisor creates a Supervisor.
func NewSupervisor(watcher ports.Watcher, runner TaskRunner, logger ports.Logger) *Supervisor {
	return &Supervisor{
		watcher: watcher,
		runner:  runner,
		logger:  logger,
	}
}

// Run watches root and dispatches events to bindings until ctx is canceled.
// On return every pending window is canceled, the watcher is closed and
// runs already in flight have finished.
func (s *Supervisor) Run(ctx context.Context, graph *domain.Graph, root string, bindings []domain.WatchBinding) error {
	for _, b := range bindings {
		if _, ok := graph.Get(b.Task); !ok {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrTaskNotFound, b.Task), "task", b.Task), "binding", b.Name)
		}
		for _, pattern := range b.Patterns {
			if !doublestar.ValidatePattern(pattern) {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrConfig, "invalid watch pattern"), "pattern", pattern), "binding", b.Name)
			}
		}
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return domain.ErrWatcherStopped
	}
	s.bindings = make([]*binding, 0, len(bindings))
	for _, wb := range bindings {
		b := &binding{WatchBinding: wb}
		b.debouncer = NewDebouncer(wb.Debounce, func([]string) {
			s.dispatch(ctx, graph, b)
		})
		s.bindings = append(s.bindings, b)
	}
	s.mu.Unlock()

	if err := s.watcher.Start(ctx, root); err != nil {
		s.Stop()
		return err
	}

	stopOnCancel := context.AfterFunc(ctx, s.Stop)
	defer stopOnCancel()

	for event := range s.watcher.Events() {
		rel, ok := relative(root, event.Path)
		if !ok {
			continue
		}
		for _, b := range s.bindings {
			if b.matches(rel) {
				b.debouncer.Add(rel)
			}
		}
	}

	s.Stop()
	s.inflight.Wait()
	return nil
}

// Stop cancels pending windows and closes the watcher.
// No task is scheduled after Stop returns. Calling it again is a no-op.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	bindings := s.bindings
	s.mu.Unlock()

	for _, b := range bindings {
		b.debouncer.Stop()
	}
	if err := s.watcher.Stop(); err != nil {
		s.logger.Warn("failed to close file watcher: " + err.Error())
	}
}

func (s *Supervisor) dispatch(ctx context.Context, graph *domain.Graph, b *binding) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.inflight.Add(1)
	s.mu.Unlock()
	defer s.inflight.Done()

	b.running.Lock()
	defer b.running.Unlock()

	if ctx.Err() != nil {
		return
	}
	// Failing leaves were already reported by the notifier.
	_ = s.runner.Run(ctx, graph, b.Task)
}

func (b *binding) matches(rel string) bool {
	for _, pattern := range b.Patterns {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}

// relative returns path relative to root with forward slashes.
// Paths outside root are rejected.
func relative(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

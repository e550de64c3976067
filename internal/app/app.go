// Package app implements the application layer for wpbuild.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/wpbuild/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Registrar adds the build stages of a project to a graph.
type Registrar interface {
	Register(g *domain.Graph, project pipeline.Project) error
}

// TaskRunner runs tasks of a graph.
type TaskRunner interface {
	RunAll(ctx context.Context, graph *domain.Graph, names []string) error
}

// Watcher dispatches file changes to bound tasks until ctx is canceled.
type Watcher interface {
	Run(ctx context.Context, graph *domain.Graph, root string, bindings []domain.WatchBinding) error
}

// App represents the main application logic.
type App struct {
	loader  ports.ConfigLoader
	logger  ports.Logger
	stages  Registrar
	runner  TaskRunner
	watcher Watcher
	server  ports.DevServer
	tracer  ports.Tracer
	cache   ports.CacheStore
	project pipeline.Project
	closers []io.Closer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	stages Registrar,
	runner TaskRunner,
	watcher Watcher,
	server ports.DevServer,
	tracer ports.Tracer,
	cache ports.CacheStore,
) *App {
	return &App{
		loader:  loader,
		logger:  log,
		stages:  stages,
		runner:  runner,
		watcher: watcher,
		server:  server,
		tracer:  tracer,
		cache:   cache,
		project: pipeline.Project{Root: ".", File: domain.ConfigFileName},
	}
}

// WithClosers registers resources released by Close, such as long running
// compiler processes.
func (a *App) WithClosers(closers ...io.Closer) *App {
	a.closers = append(a.closers, closers...)
	return a
}

// GlobalOptions are the settings shared by every command.
type GlobalOptions struct {
	// Dir is the project root. Empty keeps the working directory.
	Dir string
	// Config is the configuration file, relative to the project root unless absolute.
	Config string
	// JSON switches logs to JSON lines.
	JSON bool
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// Configure applies the global options. It changes the working directory
// when a project directory is given so relative paths resolve against it.
func (a *App) Configure(opts GlobalOptions) error {
	if opts.JSON {
		if l, ok := a.logger.(jsonLogger); ok {
			l.SetJSON(true)
		}
	}

	if opts.Dir != "" {
		if err := os.Chdir(opts.Dir); err != nil {
			return zerr.With(zerr.Wrap(domain.Classify(domain.ErrConfig, err), "cannot enter project directory"), "dir", opts.Dir)
		}
	}
	root, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(domain.Classify(domain.ErrIO, err), "cannot determine project directory")
	}

	file := opts.Config
	if file == "" {
		file = domain.ConfigFileName
	}
	a.project = pipeline.Project{Root: filepath.Clean(root), File: file}
	return nil
}

// Project returns the project the commands operate on.
func (a *App) Project() pipeline.Project {
	return a.project
}

// Graph builds the task graph of the current project.
func (a *App) Graph() (*domain.Graph, error) {
	g := domain.NewGraph()
	if err := a.stages.Register(g, a.project); err != nil {
		return nil, zerr.Wrap(err, "failed to build task graph")
	}
	return g, nil
}

// Run executes the named tasks in order and stops at the first failure.
func (a *App) Run(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	graph, err := a.Graph()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, ok := graph.Get(name); !ok {
			return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, name), "task", name)
		}
	}

	if err := a.runner.RunAll(ctx, graph, names); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

// Watch runs the initial build, then serves the dev server and rebuilds on
// file changes until ctx is canceled. A failed initial build returns
// without starting either.
func (a *App) Watch(ctx context.Context) error {
	graph, err := a.Graph()
	if err != nil {
		return err
	}

	if err := a.runner.RunAll(ctx, graph, []string{pipeline.TaskBuild}); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	cfg, err := a.loader.Load(a.project.Root, a.project.File)
	if err != nil {
		return zerr.Wrap(domain.Classify(domain.ErrConfig, err), "failed to load configuration")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return a.server.Serve(gctx, cfg, func(url string) {
			a.logger.Info("dev server listening on " + url)
			if cfg.ProjectURL != "" {
				a.logger.Info("proxying " + cfg.ProjectURL)
			}
		})
	})

	g.Go(func() error {
		defer cancel()
		a.logger.Info("watching " + a.project.Root + " for changes")
		return a.watcher.Run(gctx, graph, a.project.Root, pipeline.Bindings(cfg))
	})

	return g.Wait()
}

// TaskInfo describes a registered task.
type TaskInfo struct {
	Name        string
	Kind        string
	Description string
	Children    []string
}

// Tasks lists the registered tasks sorted by name.
func (a *App) Tasks() ([]TaskInfo, error) {
	graph, err := a.Graph()
	if err != nil {
		return nil, err
	}

	names := graph.Names()
	infos := make([]TaskInfo, 0, len(names))
	for _, name := range names {
		t, _ := graph.Get(name)
		children := make([]string, len(t.Children))
		for i, c := range t.Children {
			children[i] = c.String()
		}
		infos = append(infos, TaskInfo{
			Name:        name,
			Kind:        t.Kind.String(),
			Description: t.Description,
			Children:    children,
		})
	}
	return infos, nil
}

// shutdowner is implemented by tracers that buffer spans.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Close flushes pending telemetry and releases the image cache and every
// registered closer.
func (a *App) Close(ctx context.Context) error {
	var errs error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if s, ok := a.tracer.(shutdowner); ok {
		if err := s.Shutdown(ctx); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to flush telemetry"))
		}
	}
	if err := a.cache.Close(); err != nil {
		errs = errors.Join(errs, zerr.Wrap(err, "failed to close image cache"))
	}
	return errs
}

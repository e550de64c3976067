// Package scheduler runs tasks of the build graph.
package scheduler

import (
	"context"
	"errors"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes named tasks of a graph.
// Leaves run through the Boundary; composites fan out to their children.
type Runner struct {
	boundary *Boundary
	tracer   ports.Tracer
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(boundary *Boundary, tracer ports.Tracer) *Runner {
	return &Runner{
		boundary: boundary,
		tracer:   tracer,
	}
}

// Run executes the named task and everything below it.
// It returns nil or the joined failures of every leaf that failed.
// Running a task again is always allowed.
func (r *Runner) Run(ctx context.Context, graph *domain.Graph, name string) error {
	task, ok := graph.Get(name)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, name), "task", name)
	}
	return r.run(ctx, graph, task)
}

// RunAll runs the named tasks one after another and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context, graph *domain.Graph, names []string) error {
	if len(names) == 0 {
		return domain.ErrNoTargetsSpecified
	}
	for _, name := range names {
		if _, ok := graph.Get(name); !ok {
			return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, name), "task", name)
		}
	}

	r.tracer.EmitPlan(ctx, names)
	for _, name := range names {
		if err := r.Run(ctx, graph, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) run(ctx context.Context, graph *domain.Graph, task domain.Task) error {
	ctx, span := r.tracer.Start(ctx, task.Name.String())
	defer span.End()
	span.SetAttribute("kind", task.Kind.String())

	var err error
	switch task.Kind {
	case domain.KindSeries:
		err = r.runSeries(ctx, graph, task)
	case domain.KindParallel:
		err = r.runParallel(ctx, graph, task)
	default:
		err = r.boundary.Invoke(ctx, task, span)
	}

	if err != nil && task.Kind != domain.KindLeaf {
		span.RecordError(err)
	}
	return err
}

func (r *Runner) runSeries(ctx context.Context, graph *domain.Graph, task domain.Task) error {
	for _, child := range task.Children {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runChild(ctx, graph, task, child); err != nil {
			return err
		}
	}
	return nil
}

// runParallel runs every child even when a sibling fails.
func (r *Runner) runParallel(ctx context.Context, graph *domain.Graph, task domain.Task) error {
	var g errgroup.Group
	errs := make([]error, len(task.Children))
	for i, child := range task.Children {
		g.Go(func() error {
			errs[i] = r.runChild(ctx, graph, task, child)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

func (r *Runner) runChild(
	ctx context.Context,
	graph *domain.Graph,
	parent domain.Task,
	child domain.InternedString,
) error {
	task, ok := graph.Get(child.String())
	if !ok {
		err := zerr.Wrap(domain.ErrMissingDependency, parent.Name.String()+" references "+child.String())
		return zerr.With(zerr.With(err, "dependency", child.String()), "task", parent.Name.String())
	}
	return r.run(ctx, graph, task)
}

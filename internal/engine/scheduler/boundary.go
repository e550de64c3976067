package scheduler

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Boundary wraps every leaf action.
// It turns panics into errors, gives every failure a category, and reports
// it to the developer before handing it back to the runner.
type Boundary struct {
	logger   ports.Logger
	notifier ports.Notifier
	metrics  ports.Metrics
}

// NewBoundary creates a new Boundary.
func NewBoundary(logger ports.Logger, notifier ports.Notifier, metrics ports.Metrics) *Boundary {
	return &Boundary{
		logger:   logger,
		notifier: notifier,
		metrics:  metrics,
	}
}

// Invoke runs the action of task with span as its task output.
// ErrEmptyInput is logged and reported as success. Cancellation is returned
// as is. Any other error is classified (ErrCompile when it carries no
// category), tagged with the task name, notified and recorded on span.
func (b *Boundary) Invoke(ctx context.Context, task domain.Task, span ports.Span) error {
	name := task.Name.String()
	start := time.Now()

	err := b.call(domain.WithTaskOutput(ctx, span), task.Action)
	b.metrics.ObserveStage(name, time.Since(start), err)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrEmptyInput):
		b.logger.Info(headline(err))
		span.SetAttribute("skipped", true)
		return nil
	case ctx.Err() != nil && errors.Is(err, context.Canceled):
		return err
	}

	err = zerr.With(zerr.Wrap(domain.Classify(domain.ErrCompile, err), "'"+name+"' failed"), "task", name)
	b.notifier.Notify(name, err)
	span.RecordError(err)
	return err
}

func (b *Boundary) call(ctx context.Context, action domain.Action) (err error) {
	defer zerr.Defer(func(recovered error) {
		err = recovered
	})
	return action(ctx)
}

// headline returns the outermost message of err.
func headline(err error) string {
	var ze *zerr.Error
	if errors.As(err, &ze) && ze.Message() != "" {
		return ze.Message()
	}
	return err.Error()
}

package domain

import (
	"context"
	"io"
)

type taskOutputKey struct{}

// WithTaskOutput returns a context whose task action writes its progress
// lines to w.
func WithTaskOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, taskOutputKey{}, w)
}

// TaskOutput returns the writer set by WithTaskOutput, or nil.
func TaskOutput(ctx context.Context) io.Writer {
	w, _ := ctx.Value(taskOutputKey{}).(io.Writer)
	return w
}

// Package telemetry records task spans with OpenTelemetry and forwards them
// to a progress renderer.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/wpbuild/internal/core/ports"
)

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
// Spans it starts are reported to the renderer through a Bridge.
type OTelTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	renderer ports.Renderer
}

// NewOTelTracer creates a tracer with its own provider. renderer may be nil.
func NewOTelTracer(name string, renderer ports.Renderer) *OTelTracer {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
	return &OTelTracer{
		provider: provider,
		tracer:   provider.Tracer(name),
		renderer: renderer,
	}
}

// Shutdown ends the provider. Spans started afterwards are not recorded.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	if err := t.provider.Shutdown(ctx); err != nil {
		return err
	}
	if t.renderer != nil {
		return t.renderer.Flush()
	}
	return nil
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OTelSpan{span: span, renderer: t.renderer}
}

// EmitPlan records the requested targets on the current span and tells the renderer.
func (t *OTelTracer) EmitPlan(ctx context.Context, targets []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("tasks", targets),
		))
	}
	if t.renderer != nil {
		t.renderer.OnPlanEmit(targets)
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span     trace.Span
	renderer ports.Renderer
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write satisfies io.Writer by adding a log event to the span and passing
// the output on to the renderer.
func (s *OTelSpan) Write(p []byte) (int, error) {
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
	if s.renderer != nil {
		s.renderer.OnTaskLog(s.span.SpanContext().SpanID().String(), p)
	}
	return len(p), nil
}

// Package telemetry provides the OpenTelemetry implementation of the telemetry port and
// the fan-out used to feed several recorders at once.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// Tracer implements ports.Telemetry with OpenTelemetry spans.
type Tracer struct {
	tracer   trace.Tracer
	provider trace.TracerProvider
}

// NewTracerWithProvider creates a Tracer from the given provider.
func NewTracerWithProvider(provider trace.TracerProvider, name string) *Tracer {
	return &Tracer{tracer: provider.Tracer(name), provider: provider}
}

// Record starts a span. The returned context carries the span.
func (t *Tracer) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Close shuts down the provider when the Tracer was created with one that supports it.
func (t *Tracer) Close() error {
	if p, ok := t.provider.(interface{ Shutdown(context.Context) error }); ok {
		return p.Shutdown(context.Background())
	}
	return nil
}

// Span implements ports.Vertex on an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// Log adds a log event to the span.
func (s *Span) Log(level domain.LogLevel, msg string) {
	s.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
}

// Complete ends the span, recording the error when set.
func (s *Span) Complete(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}

// Cached marks the span as a cache hit.
func (s *Span) Cached() {
	s.span.SetAttributes(cachedKey.Bool(true))
}

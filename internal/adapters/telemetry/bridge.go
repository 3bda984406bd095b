package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/weave/internal/core/ports"
)

const cachedKey = attribute.Key("weave.cached")

// LogBridge implements sdktrace.SpanProcessor by writing ended spans to a logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// NewProvider creates an SDK tracer provider that reports every span through the bridge.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its outcome and whether it was served from the cache.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	outcome := "ok"
	if s.Status().Code == codes.Error {
		outcome = "failed: " + s.Status().Description
	}

	cached := false
	for _, kv := range s.Attributes() {
		if kv.Key == cachedKey {
			cached = kv.Value.AsBool()
		}
	}

	b.logger.Debug(fmt.Sprintf("span %s %s (cached=%t, %s)",
		s.Name(), outcome, cached, s.EndTime().Sub(s.StartTime())))
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

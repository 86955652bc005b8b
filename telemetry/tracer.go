// Package telemetry exports drag sessions as OpenTelemetry spans.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/drake/splitview/splitview"
)

// Ensure Tracer implements splitview.Observer.
var _ splitview.Observer = (*Tracer)(nil)

// Tracer records one span per drag session, from pointer-down on a sash to
// release.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	ctx      context.Context

	span       oteltrace.Span
	moves      int
	cascadeMax int
}

// NewTracer creates a Tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled).
func NewTracer(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "splitview"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return newTracer(ctx, provider), nil
}

func newTracer(ctx context.Context, provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("splitview/drag"),
		ctx:      ctx,
	}
}

// DragStart opens the session span. A session still open is ended first.
func (t *Tracer) DragStart(sash int) {
	if t == nil {
		return
	}
	t.finish()
	_, t.span = t.tracer.Start(t.ctx, "splitview.drag",
		oteltrace.WithAttributes(attribute.Int("splitview.sash", sash)))
	t.moves = 0
	t.cascadeMax = 0
}

// DragMove counts a move and the longest cascade seen.
func (t *Tracer) DragMove(step splitview.DragStep) {
	if t == nil || t.span == nil {
		return
	}
	t.moves++
	t.cascadeMax = max(t.cascadeMax, len(step.Moved))
}

// DragEnd closes the session span.
func (t *Tracer) DragEnd(int) {
	if t == nil {
		return
	}
	t.finish()
}

func (t *Tracer) finish() {
	if t.span == nil {
		return
	}
	t.span.SetAttributes(
		attribute.Int("splitview.moves", t.moves),
		attribute.Int("splitview.cascade.max", t.cascadeMax),
	)
	t.span.End()
	t.span = nil
}

// Shutdown ends any open session, then flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	t.finish()
	return t.provider.Shutdown(ctx)
}

// Package trace emits OpenTelemetry spans for focus and scroll
// operations. Export is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT
// is set; otherwise every call is a no-op.
package trace

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OTLP-backed tracer provider. The zero value and a
// nil receiver are both safe no-ops, so callers never need to check
// whether export is configured.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool
}

// New creates a tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns
// a disabled tracer (not an error) when the endpoint is absent.
func New(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return &Tracer{}, nil
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
		serviceName = "termcv"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("termcv/focus"),
		enabled:  true,
	}, nil
}

// Span starts a span and returns its end function. Usage:
//
//	defer t.Span("focus.open", attribute.String("panel.id", id))()
func (t *Tracer) Span(name string, attrs ...attribute.KeyValue) func() {
	if t == nil || !t.enabled {
		return func() {}
	}
	_, span := t.tracer.Start(context.Background(), name, oteltrace.WithAttributes(attrs...))
	return func() { span.End() }
}

// Shutdown flushes pending spans. Safe on a disabled tracer.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || !t.enabled {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return t.provider.Shutdown(ctx)
}

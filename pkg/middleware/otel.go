package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name.
const defaultTracerName = "velem"

// TracingConfig configures OpenTelemetry tracing of mounts.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "velem").
	TracerName string

	// Provider is the tracer provider. Default: the global provider.
	Provider trace.TracerProvider

	// Attributes are added to every mount span.
	Attributes []attribute.KeyValue
}

// TracingOption configures tracing.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// WithSpanAttributes adds constant attributes to every mount span.
func WithSpanAttributes(attrs ...attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// Tracing starts one span per mount.
type Tracing struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

// NewTracing resolves the tracer from the configured provider.
func NewTracing(opts ...TracingOption) *Tracing {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	provider := config.Provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Tracing{
		tracer: provider.Tracer(config.TracerName),
		attrs:  config.Attributes,
	}
}

// start opens the mount span for tag.
func (t *Tracing) start(ctx context.Context, tag string) (context.Context, trace.Span) {
	attrs := append([]attribute.KeyValue{attribute.String("velem.tag", tag)}, t.attrs...)
	return t.tracer.Start(ctx, "velem.mount",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// finish records the outcome on span and ends it.
func finish(span trace.Span, nodes, ops int, err error) {
	span.SetAttributes(
		attribute.Int("velem.nodes", nodes),
		attribute.Int("velem.host_ops", ops),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("velem.error_class", ErrorClass(err)))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/apiruntime/version"
)

// Metric names.
const (
	MetricRequestCount    = "apiruntime.request.count"
	MetricRequestDuration = "apiruntime.request.duration"
)

// FinishFunc ends an instrumented request. status is 0 when no response
// arrived.
type FinishFunc func(status int, err error)

// Instrumentation records one span and two metrics per endpoint call.
// A nil *Instrumentation is valid and records nothing.
type Instrumentation struct {
	service  string
	tracer   trace.Tracer
	count    metric.Int64Counter
	duration metric.Float64Histogram
}

type instrumentationOptions struct {
	tp trace.TracerProvider
	mp metric.MeterProvider
}

// InstrumentationOption customizes NewInstrumentation.
type InstrumentationOption func(*instrumentationOptions)

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) InstrumentationOption {
	return func(o *instrumentationOptions) { o.tp = tp }
}

// WithMeterProvider replaces the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) InstrumentationOption {
	return func(o *instrumentationOptions) { o.mp = mp }
}

// NewInstrumentation creates the tracer and instruments for service.
func NewInstrumentation(service string, opts ...InstrumentationOption) (*Instrumentation, error) {
	o := instrumentationOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tp == nil {
		o.tp = otel.GetTracerProvider()
	}
	if o.mp == nil {
		o.mp = otel.GetMeterProvider()
	}

	meter := o.mp.Meter(version.ModulePath, metric.WithInstrumentationVersion(version.GetShortVersion()))

	count, err := meter.Int64Counter(MetricRequestCount,
		metric.WithDescription("Total number of endpoint requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRequestCount, err)
	}

	duration, err := meter.Float64Histogram(MetricRequestDuration,
		metric.WithDescription("Duration of endpoint requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricRequestDuration, err)
	}

	return &Instrumentation{
		service:  service,
		tracer:   o.tp.Tracer(version.ModulePath, trace.WithInstrumentationVersion(version.GetShortVersion())),
		count:    count,
		duration: duration,
	}, nil
}

// Start opens a client span named after endpoint. The returned context
// carries the span; call the FinishFunc exactly once.
func (i *Instrumentation) Start(ctx context.Context, endpoint, method, uri string) (context.Context, FinishFunc) {
	if i == nil {
		return ctx, func(int, error) {}
	}

	start := time.Now()
	ctx, span := i.tracer.Start(ctx, endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrServiceName, i.service),
			attribute.String(AttrEndpoint, endpoint),
			attribute.String(AttrMethod, method),
			attribute.String(AttrURI, uri),
		),
	)

	return ctx, func(status int, err error) {
		outcome := "ok"
		if status > 0 {
			span.SetAttributes(attribute.Int(AttrStatusCode, status))
		}
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		attrs := metric.WithAttributes(
			attribute.String(AttrServiceName, i.service),
			attribute.String(AttrEndpoint, endpoint),
			attribute.String(AttrMethod, method),
			attribute.String(AttrOutcome, outcome),
		)
		i.count.Add(ctx, 1, attrs)
		i.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

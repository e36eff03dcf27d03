package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTestInstrumentation(t *testing.T) (*Instrumentation, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	inst, err := NewInstrumentation("petstore", WithTracerProvider(tp), WithMeterProvider(mp))
	require.NoError(t, err)
	return inst, recorder, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestInstrumentation_Success(t *testing.T) {
	inst, recorder, reader := newTestInstrumentation(t)

	ctx, finish := inst.Start(context.Background(), "getPet", "GET", "pets/42")
	assert.True(t, traceSpanValid(ctx))
	finish(200, nil)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "getPet", span.Name())
	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Contains(t, span.Attributes(), attribute.String(AttrMethod, "GET"))
	assert.Contains(t, span.Attributes(), attribute.String(AttrURI, "pets/42"))
	assert.Contains(t, span.Attributes(), attribute.Int(AttrStatusCode, 200))

	metrics := collect(t, reader)
	count, ok := metrics[MetricRequestCount].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, count.DataPoints, 1)
	assert.Equal(t, int64(1), count.DataPoints[0].Value)
	outcome, _ := count.DataPoints[0].Attributes.Value(AttrOutcome)
	assert.Equal(t, "ok", outcome.AsString())

	hist, ok := metrics[MetricRequestDuration].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
}

func TestInstrumentation_Error(t *testing.T) {
	inst, recorder, reader := newTestInstrumentation(t)

	_, finish := inst.Start(context.Background(), "getPet", "GET", "pets/42")
	finish(0, errors.New("connection refused"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "connection refused", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	for _, kv := range spans[0].Attributes() {
		assert.NotEqual(t, attribute.Key(AttrStatusCode), kv.Key)
	}

	count := collect(t, reader)[MetricRequestCount].Data.(metricdata.Sum[int64])
	outcome, _ := count.DataPoints[0].Attributes.Value(AttrOutcome)
	assert.Equal(t, "error", outcome.AsString())
}

func TestInstrumentation_Nil(t *testing.T) {
	var inst *Instrumentation
	ctx := context.Background()
	got, finish := inst.Start(ctx, "getPet", "GET", "pets/42")
	assert.Equal(t, ctx, got)
	finish(200, nil)
}

func TestNewInstrumentation_GlobalProviders(t *testing.T) {
	inst, err := NewInstrumentation("petstore")
	require.NoError(t, err)
	_, finish := inst.Start(context.Background(), "listPets", "GET", "pets")
	finish(200, nil)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	assert.Equal(t, "apiruntime", cfg.ServiceName)
	assert.NotEmpty(t, cfg.ServiceVersion)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 15*time.Second, cfg.MetricInterval)
	assert.Zero(t, cfg.SampleRate)
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		cfg     Config
		wantErr string
	}{
		"disabled without endpoint": {cfg: Config{}},
		"enabled":                   {cfg: Config{Enabled: true, Endpoint: "localhost:4318", SampleRate: 0.5}},
		"enabled without endpoint":  {cfg: Config{Enabled: true}, wantErr: "endpoint"},
		"sample rate above one":     {cfg: Config{SampleRate: 1.5}, wantErr: "sample_rate"},
		"negative interval":         {cfg: Config{MetricInterval: -time.Second}, wantErr: "metric_interval"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_InvalidConfig(t *testing.T) {
	_, err := Init(context.Background(), Config{Enabled: true})
	require.Error(t, err)
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), sampler(0.25).Description())
}

func traceSpanValid(ctx context.Context) bool {
	return trace.SpanContextFromContext(ctx).IsValid()
}

package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// restoreGlobals puts back the providers replaced by a test.
func restoreGlobals(t *testing.T) {
	t.Helper()

	mp, tp, prop := otel.GetMeterProvider(), otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetMeterProvider(mp)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(prop)
	})
}

func TestNewResource(t *testing.T) {
	for _, name := range []string{"ospeople", "", "ospeople-import_2"} {
		t.Run("service name "+name, func(t *testing.T) {
			res, err := newResource(t.Context(), name)
			require.NoError(t, err)
			require.NotNil(t, res)

			value, ok := res.Set().Value(semconv.ServiceNameKey)
			require.True(t, ok, "service name attribute not found in resource")
			assert.Equal(t, name, value.AsString())
		})
	}

	t.Run("describes the telemetry sdk", func(t *testing.T) {
		res, err := newResource(t.Context(), "ospeople")
		require.NoError(t, err)

		value, ok := res.Set().Value(semconv.TelemetrySDKLanguageKey)
		require.True(t, ok)
		assert.Equal(t, "go", value.AsString())
	})
}

func TestInitProviders(t *testing.T) {
	restoreGlobals(t)

	res, err := newResource(t.Context(), "ospeople")
	require.NoError(t, err)

	t.Run("meter provider is installed globally", func(t *testing.T) {
		// The gRPC exporters connect lazily, so creation succeeds without a collector.
		mp, err := initMeterProvider(context.Background(), res)
		require.NoError(t, err)
		t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

		assert.Same(t, mp, otel.GetMeterProvider())
	})

	t.Run("tracer provider is installed globally", func(t *testing.T) {
		tp, err := initTracerProvider(context.Background(), res)
		require.NoError(t, err)
		t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

		assert.Same(t, tp, otel.GetTracerProvider())

		_, span := otel.Tracer("test").Start(t.Context(), "span")
		defer span.End()
		assert.True(t, span.SpanContext().IsValid())
	})
}

func TestInit(t *testing.T) {
	restoreGlobals(t)

	t.Run("returns a shutdown func", func(t *testing.T) {
		shutdown, err := Init(context.Background(), "ospeople")
		require.NoError(t, err)
		require.NotNil(t, shutdown)

		assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			// Exporting to a missing collector may time out.
			t.Logf("shutdown returned error (expected without a collector): %v", err)
		}
	})
}

func TestNoop(t *testing.T) {
	var shutdown ShutdownFunc = Noop
	assert.NoError(t, shutdown(t.Context()))
}

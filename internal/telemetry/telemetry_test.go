package telemetry

import (
	"context"
	"net/http/httptest"
	"testing"

	"cornerstore-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return recorder
}

func attr(kvs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range kvs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestMiddlewareRecordsServerSpan(t *testing.T) {
	recorder := setupRecorder(t)

	app := fiber.New()
	app.Use(Middleware())
	app.Get("/api/orders/:id", func(c *fiber.Ctx) error {
		assert.True(t, trace.SpanFromContext(c.UserContext()).SpanContext().IsValid())
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "boom")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/api/orders/4", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "GET /api/orders/:id", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	v, ok := attr(spans[0].Attributes(), "http.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(200), v.AsInt64())

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	v, ok = attr(spans[1].Attributes(), "http.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(500), v.AsInt64())
}

func TestSetupNone(t *testing.T) {
	shutdown, err := Setup(context.Background(), &config.Config{OTelExporter: "none"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupStdout(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := Setup(context.Background(), &config.Config{OTelExporter: "stdout", ServiceName: "test"})
	require.NoError(t, err)
	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupUnknown(t *testing.T) {
	_, err := Setup(context.Background(), &config.Config{OTelExporter: "jaeger"})
	assert.Error(t, err)
}

package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitDisabled(t *testing.T) {
	t.Setenv("DIGEST_OTEL_ENABLED", "")
	assert.False(t, Enabled())
	require.NoError(t, Init(context.Background(), "digest", "test"))
	Shutdown(context.Background())
}

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return rec
}

func TestStartRequest(t *testing.T) {
	rec := recordSpans(t)

	_, done := StartRequest(context.Background(), "Aha", "GET", "/api/v1/products")
	done(200, nil)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Aha GET", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.response.status_code", 200))
	assert.Contains(t, spans[0].Attributes(), attribute.String("url.path", "/api/v1/products"))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestStartRequestError(t *testing.T) {
	rec := recordSpans(t)

	_, done := StartRequest(context.Background(), "Confluence", "GET", "/wiki/api/v2/pages/1")
	done(0, errors.New("connection refused"))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "connection refused", spans[0].Status().Description)
	for _, kv := range spans[0].Attributes() {
		assert.NotEqual(t, attribute.Key("http.response.status_code"), kv.Key)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

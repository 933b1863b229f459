package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const restScopeName = "github.com/steveyegge/digest/rest"

// RequestDone finishes a span started by StartRequest.
type RequestDone func(status int, err error)

// StartRequest opens a client span for one outbound REST call and counts it
// in digest.rest.* metrics. With telemetry off the global providers are no-ops.
func StartRequest(ctx context.Context, service, method, endpoint string) (context.Context, RequestDone) {
	attrs := []attribute.KeyValue{
		attribute.String("digest.service", service),
		attribute.String("http.request.method", method),
	}

	m := Meter(restScopeName)
	reqs, _ := m.Int64Counter("digest.rest.requests",
		metric.WithDescription("Outbound REST requests"),
	)
	dur, _ := m.Float64Histogram("digest.rest.duration",
		metric.WithDescription("Outbound REST request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	errs, _ := m.Int64Counter("digest.rest.errors",
		metric.WithDescription("Outbound REST requests that failed or returned non-2xx"),
	)

	ctx, span := Tracer(restScopeName).Start(ctx, service+" "+method,
		trace.WithAttributes(append(attrs, attribute.String("url.path", endpoint))...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	reqs.Add(ctx, 1, metric.WithAttributes(attrs...))
	start := time.Now()

	return ctx, func(status int, err error) {
		if status != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", status))
		}
		dur.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(attrs...))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			errs.Add(ctx, 1, metric.WithAttributes(attrs...))
		}
		span.End()
	}
}

package observability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	scopeName = "github.com/astraclean/offerte_backend/pkg/observability"

	// HeaderTraceID carries the trace id back to the browser.
	HeaderTraceID = "X-Trace-Id"

	// AttrQuoteRoute marks spans and series served by a quote endpoint.
	AttrQuoteRoute = attribute.Key("offerte.quote_route")

	unmatchedRoute = "unmatched"
)

// MiddlewareConfig scopes the HTTP instrumentation.
type MiddlewareConfig struct {
	// Skip lists paths served without a span or series, such as the
	// health checks and the metrics endpoint itself.
	Skip []string
	// QuoteRoutes are the route patterns tagged with AttrQuoteRoute.
	QuoteRoutes []string
}

// FiberMiddleware opens a server span per request and records
// offerte_http_requests_total and offerte_http_request_duration_seconds,
// both labelled by method, route, status and AttrQuoteRoute.
func (p *Provider) FiberMiddleware(cfg MiddlewareConfig) fiber.Handler {
	tracer := p.Tracer(scopeName)
	meter := p.Meter(scopeName)

	requests, _ := meter.Int64Counter("offerte_http_requests_total",
		metric.WithDescription("HTTP requests served"),
		metric.WithUnit("{request}"),
	)
	latency, _ := meter.Float64Histogram("offerte_http_request_duration_seconds",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)

	skip := toSet(cfg.Skip)
	quoteRoutes := toSet(cfg.QuoteRoutes)

	return func(c fiber.Ctx) error {
		if _, ok := skip[c.Path()]; ok {
			return c.Next()
		}

		method := c.Method()
		ctx := otel.GetTextMapPropagator().Extract(c.Context(), propagation.HeaderCarrier(c.GetReqHeaders()))
		ctx, span := tracer.Start(ctx, method+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(method),
				semconv.URLPath(c.Path()),
				semconv.ClientAddress(c.IP()),
				semconv.UserAgentOriginal(c.Get(fiber.HeaderUserAgent)),
			),
		)
		defer span.End()

		c.SetContext(ctx)
		if sc := span.SpanContext(); sc.HasTraceID() {
			c.Set(HeaderTraceID, sc.TraceID().String())
		}

		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start).Seconds()

		status := statusOf(c, err)
		route := unmatchedRoute
		if status != fiber.StatusNotFound {
			route = c.Route().Path
		}
		_, isQuote := quoteRoutes[route]

		attrs := []attribute.KeyValue{
			semconv.HTTPRoute(route),
			semconv.HTTPResponseStatusCode(status),
			AttrQuoteRoute.Bool(isQuote),
		}
		span.SetName(method + " " + route)
		span.SetAttributes(attrs...)
		if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
			if err != nil {
				span.RecordError(err)
			}
		}

		set := metric.WithAttributes(append(attrs, semconv.HTTPRequestMethodKey.String(method))...)
		requests.Add(ctx, 1, set)
		latency.Record(ctx, elapsed, set)

		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

package controller

import (
	"net/http"
	"strconv"
	"time"

	"yokeair/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording request latency and request
// count per route pattern, method and status code. It must wrap the
// *http.ServeMux directly so the matched pattern is visible after routing.
func WithMetrics(meter metric.Meter) (func(http.Handler) http.Handler, error) {
	latency, err := metrics.LatencyHistogram(meter, "http.server.duration", "HTTP request latency")
	if err != nil {
		return nil, err
	}
	requests, err := metrics.Counter(meter, "http.server.requests", "HTTP requests served")
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			attrs := metric.WithAttributes(
				attribute.String("route", route),
				attribute.String("method", r.Method),
				attribute.String("status", strconv.Itoa(rec.status)),
			)
			latency.Record(r.Context(), time.Since(start).Seconds(), attrs)
			requests.Add(r.Context(), 1, attrs)
		})
	}, nil
}

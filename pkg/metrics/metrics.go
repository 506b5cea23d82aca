// Package metrics holds shared instrumentation settings and helpers.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Namespace prefixes every instrument created by this service.
const Namespace = "yokeair"

// LatencyHistogram creates a seconds-based histogram using DefaultBuckets.
func LatencyHistogram(meter metric.Meter, name, description string) (metric.Float64Histogram, error) {
	h, err := meter.Float64Histogram(Namespace+"."+name,
		metric.WithDescription(description),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create %s histogram: %w", name, err)
	}

	return h, nil
}

// Counter creates an int64 counter under the service namespace.
func Counter(meter metric.Meter, name, description string) (metric.Int64Counter, error) {
	c, err := meter.Int64Counter(Namespace+"."+name, metric.WithDescription(description))
	if err != nil {
		return nil, fmt.Errorf("could not create %s counter: %w", name, err)
	}

	return c, nil
}

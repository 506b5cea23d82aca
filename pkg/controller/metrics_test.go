package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"yokeair/pkg/controller"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics_RecordsRoute(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(mp.Meter("test"))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/properties/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	mw(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/properties/abc", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var counter *metricdata.Sum[int64]
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name == "yokeair.http.server.requests" {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			counter = &sum
		}
	}
	require.NotNil(t, counter, "request counter should be exported")
	require.Len(t, counter.DataPoints, 1)
	require.Equal(t, int64(1), counter.DataPoints[0].Value)

	route, ok := counter.DataPoints[0].Attributes.Value(attribute.Key("route"))
	require.True(t, ok)
	require.Equal(t, "GET /v1/properties/{id}", route.AsString())
	status, _ := counter.DataPoints[0].Attributes.Value(attribute.Key("status"))
	require.Equal(t, "404", status.AsString())
}

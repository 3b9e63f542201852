// Package metrics exposes Prometheus instrumentation for the parkmap
// server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parkmap_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path"})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "parkmap_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	ZoneSelectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parkmap_zone_selections_total",
		Help: "Total zone filter selections, by selected zone",
	}, []string{"zone"})
	DatasetLoadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parkmap_dataset_loads_total",
		Help: "Total successful dataset loads",
	})
	DatasetLoadFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parkmap_dataset_load_failures_total",
		Help: "Total failed dataset loads",
	})
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		RequestsTotal,
		RequestDurationMs,
		ZoneSelectionsTotal,
		DatasetLoadsTotal,
		DatasetLoadFailuresTotal,
	)
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

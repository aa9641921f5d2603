package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Tool metrics
	ToolExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waypoint_tool_executions_total",
			Help: "Total number of tool executions",
		},
		[]string{"tool", "status"}, // status: success|error
	)

	ToolLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "waypoint_tool_latency_seconds",
			Help:    "Tool execution latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"tool"},
	)

	// Upstream Maps API metrics
	MapsAPICalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waypoint_maps_api_calls_total",
			Help: "Total number of Google Maps API calls",
		},
		[]string{"endpoint", "status"}, // status: success|error
	)

	MapsAPILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "waypoint_maps_api_latency_seconds",
			Help:    "Google Maps API latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"endpoint"},
	)
)

// Register registers all metrics with the default registry
func Register() {
	prometheus.MustRegister(
		ToolExecutions,
		ToolLatency,
		MapsAPICalls,
		MapsAPILatency,
	)
}

// Handler returns the HTTP handler serving the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveToolExecution records a single tool call outcome
func ObserveToolExecution(tool string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ToolExecutions.WithLabelValues(tool, status).Inc()
	ToolLatency.WithLabelValues(tool).Observe(duration.Seconds())
}

// ObserveMapsAPICall records a single upstream call outcome
func ObserveMapsAPICall(endpoint string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	MapsAPICalls.WithLabelValues(endpoint, status).Inc()
	MapsAPILatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

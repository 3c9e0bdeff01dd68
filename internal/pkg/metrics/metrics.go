// Package metrics exposes Prometheus counters for workflow outcomes and HTTP
// traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shop"

// Metrics owns its registry so that several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	WorkflowOutcomes *prometheus.CounterVec
	Requests         *prometheus.CounterVec
	LatencyMS        *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workflow_outcomes_total",
		Help:      "Workflow runs by workflow and result.",
	}, []string{"workflow", "result"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "path"})

	registry.MustRegister(
		outcomes,
		requests,
		latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:         registry,
		WorkflowOutcomes: outcomes,
		Requests:         requests,
		LatencyMS:        latency,
	}
}

// RecordOutcome counts one finished workflow run.
func (m *Metrics) RecordOutcome(workflow string, succeeded bool) {
	result := "failure"
	if succeeded {
		result = "success"
	}
	m.WorkflowOutcomes.WithLabelValues(workflow, result).Inc()
}

// ObserveRequest counts a served request and records its latency. path should
// be the route pattern, not the raw URL.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(method, path).Observe(float64(elapsed.Milliseconds()))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

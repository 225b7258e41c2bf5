package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service's prometheus collectors. A nil *Metrics is a
// valid no-op recorder so callers never need to branch on whether metrics
// are enabled.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	storeCalls   *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec

	assemblies      *prometheus.CounterVec
	droppedRelation *prometheus.CounterVec
	associations    *prometheus.CounterVec
}

// NewMetrics builds and registers every collector on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academics_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "academics_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route/status.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "academics_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
		storeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academics_store_calls_total",
			Help: "Entity store calls by operation/outcome.",
		}, []string{"op", "outcome"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "academics_store_call_duration_seconds",
			Help:    "Entity store call latency in seconds by operation.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op"}),
		assemblies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academics_graph_assemblies_total",
			Help: "Graph assemblies by root kind/outcome.",
		}, []string{"kind", "outcome"}),
		droppedRelation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academics_graph_missing_relations_total",
			Help: "Joined keys absent from a batch result, by root kind/relation kind.",
		}, []string{"kind", "relation"}),
		associations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academics_associations_total",
			Help: "Association mutations by edge/final state.",
		}, []string{"edge", "state"}),
	}
	reg.MustRegister(
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.storeCalls, m.storeLatency,
		m.assemblies, m.droppedRelation, m.associations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Init returns nil when metrics are disabled.
func Init(enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	return NewMetrics()
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
}

func (m *Metrics) ObserveStoreCall(op string, err error, dur time.Duration) {
	if m == nil {
		return
	}
	m.storeCalls.WithLabelValues(op, outcome(err)).Inc()
	m.storeLatency.WithLabelValues(op).Observe(dur.Seconds())
}

func (m *Metrics) ObserveAssembly(kind string, err error) {
	if m == nil {
		return
	}
	m.assemblies.WithLabelValues(kind, outcome(err)).Inc()
}

func (m *Metrics) IncMissingRelation(kind, relation string) {
	if m == nil {
		return
	}
	m.droppedRelation.WithLabelValues(kind, relation).Inc()
}

func (m *Metrics) ObserveAssociation(edge, state string) {
	if m == nil {
		return
	}
	m.associations.WithLabelValues(edge, state).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

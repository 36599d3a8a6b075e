// Package metrics exposes Prometheus collectors for the portal binaries.
package metrics

import (
	"net/http"

	"portal/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics wraps the Prometheus registry and the portal's counters.
type Metrics struct {
	registry           *prometheus.Registry
	gateDenied         *prometheus.CounterVec
	aggregationFailure *prometheus.CounterVec
	auditWriteFailure  prometheus.Counter
	broadcastBatches   *prometheus.CounterVec
}

// New creates a registry with process and Go runtime collectors plus the portal counters.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	gateDenied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_gate_denied_total",
		Help: "Total number of requests rejected by a role gate.",
	}, []string{"gate"})

	aggregationFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_aggregation_source_failures_total",
		Help: "Total number of dashboard sources that failed and were treated as empty.",
	}, []string{"source"})

	auditWriteFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_audit_write_failures_total",
		Help: "Total number of admin log entries that could not be written.",
	})

	broadcastBatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_broadcast_batches_total",
		Help: "Total number of campaign batches by outcome.",
	}, []string{"outcome"})

	registry.MustRegister(gateDenied, aggregationFailure, auditWriteFailure, broadcastBatches)

	return &Metrics{
		registry:           registry,
		gateDenied:         gateDenied,
		aggregationFailure: aggregationFailure,
		auditWriteFailure:  auditWriteFailure,
		broadcastBatches:   broadcastBatches,
	}
}

// NewRecorder exposes m as the domain's MetricsRecorder.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) GateDenied(gate string) {
	m.gateDenied.WithLabelValues(gate).Inc()
}

func (m *Metrics) AggregationSourceFailed(source string) {
	m.aggregationFailure.WithLabelValues(source).Inc()
}

func (m *Metrics) AuditWriteFailed() {
	m.auditWriteFailure.Inc()
}

func (m *Metrics) BroadcastBatch(outcome string) {
	m.broadcastBatches.WithLabelValues(outcome).Inc()
}

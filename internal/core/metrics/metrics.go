package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
// All recording methods are safe to call on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	StatusTransitions *prometheus.CounterVec
	FlaggedShipments  *prometheus.GaugeVec
	NotificationsSent *prometheus.CounterVec
	BlobWrites        *prometheus.CounterVec
	DelayScans        *prometheus.CounterVec
}

// New creates and registers all collectors under the given namespace.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		StatusTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shipment_status_transitions_total",
				Help:      "Status transition attempts by source status, target status and outcome.",
			},
			[]string{"from", "to", "outcome"},
		),
		FlaggedShipments: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "shipments_flagged",
				Help:      "Shipments flagged by the last delay detection run, by severity.",
			},
			[]string{"severity"},
		),
		NotificationsSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_sent_total",
				Help:      "Mock notifications recorded, by channel and audience.",
			},
			[]string{"channel", "audience"},
		),
		BlobWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "blob_writes_total",
				Help:      "Package persistence attempts by outcome (saved, returned).",
			},
			[]string{"outcome"},
		),
		DelayScans: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "delay_scans_total",
				Help:      "Scheduled delay sweeps by outcome.",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.StatusTransitions,
		m.FlaggedShipments,
		m.NotificationsSent,
		m.BlobWrites,
		m.DelayScans,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTransition counts one status transition attempt.
func (m *Metrics) ObserveTransition(from, to, outcome string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(from, to, outcome).Inc()
}

// SetFlagged replaces the per-severity gauge values.
func (m *Metrics) SetFlagged(counts map[string]int) {
	if m == nil {
		return
	}
	for severity, n := range counts {
		m.FlaggedShipments.WithLabelValues(severity).Set(float64(n))
	}
}

// ObserveNotification counts one recorded notification.
func (m *Metrics) ObserveNotification(channel, audience string) {
	if m == nil {
		return
	}
	m.NotificationsSent.WithLabelValues(channel, audience).Inc()
}

// ObserveBlobWrite counts one package persistence attempt.
func (m *Metrics) ObserveBlobWrite(outcome string) {
	if m == nil {
		return
	}
	m.BlobWrites.WithLabelValues(outcome).Inc()
}

// ObserveDelayScan counts one scheduled sweep.
func (m *Metrics) ObserveDelayScan(outcome string) {
	if m == nil {
		return
	}
	m.DelayScans.WithLabelValues(outcome).Inc()
}

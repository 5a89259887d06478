package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
)

const namespace = "fleet_inventory"

const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeUpstream     = "upstream_error"
)

type Metrics struct {
	analyses       *prometheus.CounterVec
	visionDuration prometheus.Histogram
	stockStatus    *prometheus.CounterVec
	registrySize   prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_analyses_total",
			Help:      "Image analyses by outcome.",
		}, []string{"outcome"}),
		visionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "vision_request_duration_seconds",
			Help:      "Latency of annotation service calls.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 8),
		}),
		stockStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciled_items_total",
			Help:      "Reconciled registry items by stock status.",
		}, []string{"status"}),
		registrySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_items",
			Help:      "Items currently held in the inventory registry.",
		}),
	}

	reg.MustRegister(m.analyses, m.visionDuration, m.stockStatus, m.registrySize)

	return m
}

func (m *Metrics) ObserveAnalysis(outcome string, elapsed time.Duration) {
	m.analyses.WithLabelValues(outcome).Inc()
	if outcome != OutcomeInvalidInput {
		m.visionDuration.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) ObserveStatuses(statuses []domain.InventoryStatus) {
	for _, s := range statuses {
		m.stockStatus.WithLabelValues(string(s.Status)).Inc()
	}
}

func (m *Metrics) SetRegistrySize(n int) {
	m.registrySize.Set(float64(n))
}

package contract

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"community_fund/contract/fund"
)

// Metrics counts operations by outcome and tracks vault totals. A nil *Metrics is a no-op.
type Metrics struct {
	ops       *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	deposited prometheus.Gauge
	claimed   prometheus.Gauge
}

// NewMetrics registers the fund collectors on reg.
// Example payload: contract.NewMetrics(prometheus.NewRegistry())
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fund",
			Name:      "operations_total",
			Help:      "Fund operations by name and result kind.",
		}, []string{"op", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fund",
			Name:      "operation_duration_seconds",
			Help:      "Latency of fund operations including the commit.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		deposited: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fund",
			Name:      "vault_total_deposited",
			Help:      "Cumulative deposits in smallest units.",
		}),
		claimed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fund",
			Name:      "vault_total_claimed",
			Help:      "Cumulative claims in smallest units.",
		}),
	}
	reg.MustRegister(m.ops, m.latency, m.deposited, m.claimed)
	return m
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(op, ErrorKind(err)).Inc()
	m.latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) vault(v *fund.Vault) {
	if m == nil || v == nil {
		return
	}
	m.deposited.Set(float64(v.TotalDeposited))
	m.claimed.Set(float64(v.TotalClaimed))
}

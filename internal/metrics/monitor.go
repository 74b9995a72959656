package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	monitorHeadsReceivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockpulse",
		Subsystem: "monitor",
		Name:      "heads_received_total",
		Help:      "Count of new-head announcements received from the node.",
	})
	monitorBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockpulse",
		Subsystem: "monitor",
		Name:      "blocks_total",
		Help:      "Count of resolved blocks by record outcome.",
	}, []string{"status"})
	monitorTransactionRate = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockpulse",
		Subsystem: "monitor",
		Name:      "transactions_per_second",
		Help:      "Transaction rate over the measurement window.",
	})
	monitorGasRate = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockpulse",
		Subsystem: "monitor",
		Name:      "gas_per_second",
		Help:      "Gas consumption rate over the measurement window.",
	})
	monitorMiniBlockRate = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockpulse",
		Subsystem: "monitor",
		Name:      "mini_blocks_per_second",
		Help:      "Mini-block fragment rate over the measurement window.",
	})
	monitorWindowObservations = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockpulse",
		Subsystem: "monitor",
		Name:      "window_observations",
		Help:      "Number of observations currently held by the measurement window.",
	})
)

// Monitor tracks metrics for the live measurement loop.
type Monitor struct{}

// NewMonitor creates a Monitor metrics collector.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// ObserveHead counts one new-head announcement.
func (m Monitor) ObserveHead() {
	monitorHeadsReceivedTotal.Inc()
}

// ObserveBlock counts one resolved block by whether the window accepted it.
func (m Monitor) ObserveBlock(accepted bool) {
	status := "recorded"
	if !accepted {
		status = "stale"
	}
	monitorBlocksTotal.WithLabelValues(status).Inc()
}

// SetRates publishes the current window rates and occupancy.
func (m Monitor) SetRates(transactionsPerSecond, gasPerSecond, miniBlocksPerSecond float64, windowLen int) {
	monitorTransactionRate.Set(transactionsPerSecond)
	monitorGasRate.Set(gasPerSecond)
	monitorMiniBlockRate.Set(miniBlocksPerSecond)
	monitorWindowObservations.Set(float64(windowLen))
}

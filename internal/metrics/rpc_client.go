package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockpulse",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "chain_id", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockpulse",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain_id", "status"})
)

// RPCClient tracks metrics for RPC calls to the chain node.
type RPCClient struct {
	chainID string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(chainID string) *RPCClient {
	if chainID == "" {
		chainID = "unknown"
	}
	return &RPCClient{chainID: chainID}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, m.chainID, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.chainID, status).Observe(time.Since(started).Seconds())
}

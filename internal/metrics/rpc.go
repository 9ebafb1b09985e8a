package metrics

import "github.com/prometheus/client_golang/prometheus"

// RPC Prometheus metrics.
var (
	RPCRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legalmind",
			Name:      "rpc_requests_total",
			Help:      "Total number of JSON-RPC requests by method and outcome",
		},
		[]string{"method", "status"}, // status: "ok" / "error"
	)
)

// RegisterRPCMetrics registers RPC metrics with the default registry.
// Called explicitly from main (no init()).
func RegisterRPCMetrics() {
	prometheus.MustRegister(RPCRequestsTotal)
}

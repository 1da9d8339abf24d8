package eth

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/chainpulse/internal/custompromauto"
)

var rpcRequests = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Namespace: custompromauto.Namespace,
	Name:      "rpc_requests_total",
	Help:      "Number of json-rpc requests sent to the eth node, by method and outcome",
}, []string{"method", "outcome"})

var rpcRequestDuration = custompromauto.Auto().NewHistogramVec(prometheus.HistogramOpts{
	Namespace: custompromauto.Namespace,
	Name:      "rpc_request_duration_seconds",
	Help:      "Latency of json-rpc requests sent to the eth node",
	Buckets:   prometheus.DefBuckets,
}, []string{"method"})

var readinessAttempts = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Namespace: custompromauto.Namespace,
	Name:      "node_readiness_attempts_total",
	Help:      "Number of chain id probes made while waiting for the eth node to become reachable",
})

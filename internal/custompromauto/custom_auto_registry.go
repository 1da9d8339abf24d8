package custompromauto

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric registered by chainpulse.
const Namespace = "chainpulse"

var registry *prometheus.Registry
var auto promauto.Factory

func init() {
	registry = prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto = promauto.With(registry)
}

// Auto returns the factory bound to the private registry.
func Auto() promauto.Factory {
	return auto
}

// Registry returns the private registry served on /metrics.
func Registry() *prometheus.Registry {
	return registry
}

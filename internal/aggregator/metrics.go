package aggregator

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/chainpulse/internal/custompromauto"
)

var (
	cycles = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "poll_cycles_total",
		Help:      "Total number of completed poll cycles, by outcome",
	}, []string{"outcome"})

	cycleDuration = custompromauto.Auto().NewHistogram(prometheus.HistogramOpts{
		Namespace: custompromauto.Namespace,
		Name:      "poll_cycle_duration_seconds",
		Help:      "Wall time spent in a poll cycle",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	skippedItems = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "poll_skipped_items_total",
		Help:      "Total number of blocks or transactions skipped within a poll cycle after a failed fetch",
	}, []string{"stage"})

	headRegressions = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "head_regressions_total",
		Help:      "Number of times the reported chain head was lower than the previously published one",
	})

	lookups = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "lookups_total",
		Help:      "Total number of on-demand lookups, by kind and outcome",
	}, []string{"kind", "outcome"})
)

var (
	connectedGauge = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Namespace: custompromauto.Namespace,
		Name:      "connected",
		Help:      "1 if the last poll cycle reached the node, 0 otherwise",
	})
	latestHeightGauge = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Namespace: custompromauto.Namespace,
		Name:      "latest_height",
		Help:      "Chain head height as of the last successful poll cycle",
	})
	tpsGauge = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Namespace: custompromauto.Namespace,
		Name:      "transactions_per_second",
		Help:      "Transactions per second over the stats scan range",
	})
	avgBlockTimeGauge = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Namespace: custompromauto.Namespace,
		Name:      "average_block_time_seconds",
		Help:      "Average block interval over the stats scan range",
	})
)

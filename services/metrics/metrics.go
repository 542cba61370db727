// Package metrics exposes the Prometheus counters of the records engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	tableLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkmygrade_table_loads_total",
			Help: "Total number of table files loaded",
		},
		[]string{"table"},
	)
	tableSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkmygrade_table_saves_total",
			Help: "Total number of table files rewritten, by outcome",
		},
		[]string{"table", "outcome"},
	)
	malformedLines = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkmygrade_malformed_lines_total",
			Help: "Total number of table lines skipped because they could not be parsed",
		},
		[]string{"table"},
	)
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkmygrade_query_duration_seconds",
			Help:    "Duration of student sorts and searches",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"query"},
	)
	partialWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkmygrade_partial_writes_total",
			Help: "Total number of multi-table operations left partially applied",
		},
	)
)

// IncTableLoads counts one load of table.
func IncTableLoads(table string) {
	tableLoads.WithLabelValues(table).Inc()
}

// IncTableSaves counts one rewrite of table; failed rewrites are labelled "error".
func IncTableSaves(table string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	tableSaves.WithLabelValues(table, outcome).Inc()
}

// IncMalformedLines counts one skipped line of table.
func IncMalformedLines(table string) {
	malformedLines.WithLabelValues(table).Inc()
}

// ObserveQuery records the duration of a sort or search.
func ObserveQuery(query string, d time.Duration) {
	queryDuration.WithLabelValues(query).Observe(d.Seconds())
}

func IncPartialWrites() {
	partialWrites.Inc()
}

// Handler returns the Prometheus HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

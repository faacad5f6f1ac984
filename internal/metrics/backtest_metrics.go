// Package metrics defines backtesting-specific Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backtest counter vectors
var (
	BacktestUnitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soccer_bettor",
		Name:      "backtest_units_total",
		Help:      "Total number of backtest units of work by status",
	}, []string{"status"})

	BacktestRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soccer_bettor",
		Name:      "backtest_runs_total",
		Help:      "Total number of full backtest runs by status",
	}, []string{"status"})
)

// Backtest histogram vectors
var (
	BacktestUnitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "soccer_bettor",
		Name:      "backtest_unit_duration_seconds",
		Help:      "Wall time of a single fit-and-bet unit of work",
		Buckets:   prometheus.DefBuckets,
	})
)

// RecordBacktestUnit records one completed unit of work.
// status should be one of: "success", "failure".
func RecordBacktestUnit(status string, seconds float64) {
	BacktestUnitsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		BacktestUnitDuration.Observe(seconds)
	}
}

// RecordBacktestRun records a full backtest run outcome.
func RecordBacktestRun(status string) {
	BacktestRunsTotal.WithLabelValues(status).Inc()
}

package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	e.CollectRuns(ch)   // Run counters
	e.CollectResult(ch) // Most recent result gauges
}

// CollectRuns emits the lifetime run and row counters.
func (e *Exporter) CollectRuns(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		e.Runs,
		prometheus.CounterValue,
		RunCount,
	)
	ch <- prometheus.MustNewConstMetric(
		e.RunFailures,
		prometheus.CounterValue,
		RunFailureCount,
	)
	ch <- prometheus.MustNewConstMetric(
		e.LoadErrors,
		prometheus.CounterValue,
		LoadErrorCount,
	)
	ch <- prometheus.MustNewConstMetric(
		e.RowsScanned,
		prometheus.CounterValue,
		RowsScannedCount,
	)
	ch <- prometheus.MustNewConstMetric(
		e.Transactions,
		prometheus.CounterValue,
		MatchedCount,
		"matched",
	)
	ch <- prometheus.MustNewConstMetric(
		e.Transactions,
		prometheus.CounterValue,
		UnmatchedCount,
		"unmatched",
	)
}

// CollectResult emits gauges describing the most recent completed run.
func (e *Exporter) CollectResult(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		e.MatchedAccounts,
		prometheus.GaugeValue,
		LastMatchedAccounts,
	)
	ch <- prometheus.MustNewConstMetric(
		e.MatchedTotal,
		prometheus.GaugeValue,
		LastMatchedTotal,
	)
	ch <- prometheus.MustNewConstMetric(
		e.LastRunTime,
		prometheus.GaugeValue,
		LastRunUnix,
	)
}

// RecordRun updates the package counters after a completed pass.
func RecordRun(rowsScanned, matched, unmatched, accounts int, total float64, failed bool) {
	RunCount++
	if failed {
		RunFailureCount++
	}
	RowsScannedCount += float64(rowsScanned)
	MatchedCount += float64(matched)
	UnmatchedCount += float64(unmatched)
	LastMatchedAccounts = float64(accounts)
	LastMatchedTotal = total
	LastRunUnix = float64(time.Now().Unix())
}

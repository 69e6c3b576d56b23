package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	treeExpansions        *prometheus.CounterVec
	treeExpansionDuration prometheus.Histogram
	syncRuns              *prometheus.CounterVec
	syncDuration          prometheus.Histogram
	syncRecords           prometheus.Gauge
	erpRequestErrors      prometheus.Counter
	directoryReloads      prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		treeExpansions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receivables_tree_expansions_total",
				Help: "Total number of tree expansion requests by level and status",
			},
			[]string{"level", "status"},
		),
		treeExpansionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "receivables_tree_expansion_duration_milliseconds",
				Help:    "Tree expansion duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		syncRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "erp_sync_runs_total",
				Help: "Total number of ERP sync runs by status",
			},
			[]string{"status"},
		),
		syncDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "erp_sync_duration_milliseconds",
				Help:    "ERP sync duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 14),
			},
		),
		syncRecords: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "erp_sync_records",
				Help: "Invoice and payment rows landed by the last sync run",
			},
		),
		erpRequestErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "erp_request_errors_total",
				Help: "Total number of failed requests against the ERP gateway",
			},
		),
		directoryReloads: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_directory_reloads_total",
				Help: "Total number of customer directory reloads",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "tree_expansion":
		m.treeExpansions.WithLabelValues(tags["level"], tags["status"]).Inc()
	case "erp_sync_runs":
		m.syncRuns.WithLabelValues(tags["status"]).Inc()
	case "erp_request_error":
		m.erpRequestErrors.Inc()
	case "customer_directory_reload":
		m.directoryReloads.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "tree_expansion_duration":
		m.treeExpansionDuration.Observe(float64(duration.Milliseconds()))
	case "erp_sync_duration":
		m.syncDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "erp_sync_records" {
		m.syncRecords.Set(value)
	}
}

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransactionsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "txdash_transactions_ingested_total",
		Help: "Total number of transaction events stored.",
	})

	TransactionsDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "txdash_transactions_duplicate_total",
		Help: "Total number of transaction events rejected as duplicates.",
	})

	ReportsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "txdash_reports_served_total",
		Help: "Total number of reports computed, labelled by report kind.",
	}, []string{"report"})

	OutlierDurationsExcluded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "txdash_outlier_durations_excluded_total",
		Help: "Total number of verify/accept pairs discarded for falling outside the plausible duration bound.",
	})

	DatasetLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "txdash_dataset_loads_total",
		Help: "Total number of dataset file reads, labelled by dataset.",
	}, []string{"dataset"})
)

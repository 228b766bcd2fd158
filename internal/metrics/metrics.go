package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	FetchLatest     = "latest"
	FetchHistorical = "historical"
)

var (
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fxwidget_conversions_total",
			Help: "Total number of conversions by outcome",
		},
		[]string{"outcome"},
	)

	RateFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fxwidget_rate_fetches_total",
			Help: "Total number of quotation service requests by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	RateFetchDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fxwidget_rate_fetch_duration_seconds",
			Help:    "Quotation service request duration in seconds by kind",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	SnapshotCurrencies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fxwidget_snapshot_currencies",
			Help: "Number of currencies in the current rate snapshot",
		},
	)

	FavoritesAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fxwidget_favorites_added_total",
			Help: "Total number of favorite pairs added",
		},
	)
)

func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}

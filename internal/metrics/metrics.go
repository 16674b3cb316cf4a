package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Valuation Metrics
var (
	// ValuationsTotal is labelled with the error kind as outcome on failure
	ValuationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValuationsTotal,
			Help: HelpTextValuationsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	ValuationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameValuationDuration,
			Help:    HelpTextValuationDuration,
			Buckets: ValuationLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	EfficiencyCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEfficiencyCache,
			Help: HelpTextEfficiencyCache,
		},
		[]string{LabelResult},
	)

	RecommendedRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecommendedRounds,
			Help:    HelpTextRecommendedRounds,
			Buckets: []float64{1, 2, 10, 20, 25},
		},
	)
)

// Dataset Metrics
var (
	DatasetVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDatasetVersion,
			Help: HelpTextDatasetVersion,
		},
	)

	DatasetMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDatasetMutations,
			Help: HelpTextDatasetMutations,
		},
		[]string{LabelOperation},
	)

	DatasetEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameDatasetEntries,
			Help: HelpTextDatasetEntries,
		},
		[]string{LabelKind},
	)

	DatasetRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDatasetRefreshes,
			Help: HelpTextDatasetRefreshes,
		},
		[]string{LabelOutcome},
	)
)

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

// Business Metrics
var (
	PostbacksReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePostbacksReceived,
			Help: HelpTextPostbacksReceived,
		},
		[]string{LabelNetwork, LabelEventKind},
	)

	PostbacksRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePostbacksRejected,
			Help: HelpTextPostbacksRejected,
		},
		[]string{LabelReason},
	)

	DepositVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDepositVolume,
			Help: HelpTextDepositVolume,
		},
	)

	PredictionsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsAwarded,
			Help: HelpTextPredictionsAwarded,
		},
	)

	Verifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVerifications,
			Help: HelpTextVerifications,
		},
		[]string{LabelStatus},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreErrors,
			Help: HelpTextStoreErrors,
		},
		[]string{LabelOperation},
	)
)

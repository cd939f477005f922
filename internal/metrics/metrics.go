package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CookiesEaten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCookiesEaten,
			Help: HelpTextCookiesEaten,
		},
		[]string{LabelKind},
	)

	NomsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNomsTotal,
			Help: HelpTextNomsTotal,
		},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FlightsCancelled     prometheus.Counter
	FlightsUpdated       prometheus.Counter
	NotificationsWritten prometheus.Counter
	EmailsSent           prometheus.Counter
	EmailFailures        prometheus.Counter
	FanoutDuration       prometheus.Histogram
	ErrorsCount          *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on the given
// registerer. Tests pass a fresh registry.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FlightsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_cancelled_total",
			Help:      "The total number of cancelled flights",
		}),
		FlightsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_updated_total",
			Help:      "The total number of delay/update operations applied to flights",
		}),
		NotificationsWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_written_total",
			Help:      "The total number of passenger notifications appended",
		}),
		EmailsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "The total number of emails handed to the mail provider",
		}),
		EmailFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "email_failures_total",
			Help:      "The total number of failed email attempts",
		}),
		FanoutDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fanout_duration_seconds",
			Help:      "Time taken to fan out one disruption event to all passengers",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all client-side metrics
type Metrics struct {
	// HTTP adapter metrics
	RequestsTotal  *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
	TokenClears    prometheus.Counter

	// Reminder metrics
	RemindersScheduled prometheus.Counter
	RemindersSkipped   prometheus.Counter
	RemindersCancelled prometheus.Counter
}

// NewMetrics creates and registers all client metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of API requests issued by the client",
		}, []string{"method", "path", "status"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of API requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "path"}),
		TokenClears: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_clears_total",
			Help:      "Times the stored token was cleared after a 401",
		}),
		RemindersScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_scheduled_total",
			Help:      "Local appointment reminders scheduled",
		}),
		RemindersSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_skipped_total",
			Help:      "Reminders skipped because the trigger time already passed",
		}),
		RemindersCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_cancelled_total",
			Help:      "Reminders cancelled by appointment id",
		}),
	}
}

// New creates metrics on a private registry, for tests and embedded use.
func New(namespace string) (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of API requests issued by the client",
		}, []string{"method", "path", "status"}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of API requests",
		}, []string{"method", "path"}),
		TokenClears: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_clears_total",
			Help:      "Times the stored token was cleared after a 401",
		}),
		RemindersScheduled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_scheduled_total",
			Help:      "Local appointment reminders scheduled",
		}),
		RemindersSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_skipped_total",
			Help:      "Reminders skipped because the trigger time already passed",
		}),
		RemindersCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_cancelled_total",
			Help:      "Reminders cancelled by appointment id",
		}),
	}, reg
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loon_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loon_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	bookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loon_booking_transitions_total",
		Help: "Count of booking lifecycle transitions by target status",
	}, []string{"status"})

	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loon_notifications_total",
		Help: "Count of notification attempts by kind and result",
	}, []string{"kind", "result"})

	dashboardLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loon_dashboard_loads_total",
		Help: "Count of salon dashboard aggregations",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func BookingTransition(status string) {
	bookingTransitions.WithLabelValues(status).Inc()
}

func NotificationResult(kind, result string) {
	notifications.WithLabelValues(kind, result).Inc()
}

func DashboardLoad() {
	dashboardLoads.Inc()
}

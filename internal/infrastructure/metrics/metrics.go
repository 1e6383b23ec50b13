package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "songboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "songboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	songRequestsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "songboard",
			Subsystem: "requests",
			Name:      "submitted_total",
			Help:      "Total number of song requests stored.",
		},
	)

	paymentCallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "songboard",
			Subsystem: "payments",
			Name:      "callbacks_total",
			Help:      "Payment gateway notifications by outcome.",
		},
		[]string{"outcome"},
	)

	catalogTokenRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "songboard",
			Subsystem: "catalog",
			Name:      "token_refreshes_total",
			Help:      "Catalog bearer token refresh attempts by result.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		songRequestsSubmitted,
		paymentCallbacks,
		catalogTokenRefreshes,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordSubmission() {
	songRequestsSubmitted.Inc()
}

func RecordPaymentCallback(outcome string) {
	paymentCallbacks.WithLabelValues(outcome).Inc()
}

func RecordTokenRefresh(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	catalogTokenRefreshes.WithLabelValues(result).Inc()
}

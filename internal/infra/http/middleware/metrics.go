package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	otpDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_deliveries_total",
			Help: "Total number of one-time codes delivered, by channel",
		},
		[]string{"channel"},
	)

	verificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_failures_total",
			Help: "Total number of rejected OTP verification attempts",
		},
		[]string{"stage"},
	)

	workflowsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workflows_completed_total",
			Help: "Total number of handover workflows that reached DONE",
		},
	)

	deliveryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_errors_total",
			Help: "Total number of failed notification deliveries",
		},
		[]string{"channel"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordOTPDelivery(channel string) {
	otpDeliveries.WithLabelValues(channel).Inc()
}

func RecordVerificationFailure(stage string) {
	verificationFailures.WithLabelValues(stage).Inc()
}

func RecordWorkflowCompleted() {
	workflowsCompleted.Inc()
}

func RecordDeliveryError(channel string) {
	deliveryErrors.WithLabelValues(channel).Inc()
}

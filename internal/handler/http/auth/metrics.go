package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	resultSuccess = "success"
	resultFailure = "failure" // rejected by the client's fault (4xx)
	resultError   = "error"   // server-side failure (5xx)
)

var (
	// authRequestsTotal counts account operations by operation and result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total authentication requests by operation and result",
		},
		[]string{"operation", "result"},
	)

	// authDuration tracks account operation duration.
	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Authentication duration by operation",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	// authnCheckDuration tracks how long the bearer-token middleware takes.
	authnCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authn_check_duration_seconds",
			Help:    "Bearer token check duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// forbiddenAttempts counts mutations rejected by the ownership check.
	forbiddenAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forbidden_attempts_total",
			Help: "Forbidden access attempts by method",
		},
		[]string{"method"},
	)
)

// RecordAuthRequest records an account operation.
func RecordAuthRequest(operation, result string) {
	authRequestsTotal.WithLabelValues(operation, result).Inc()
}

// RecordAuthDuration records account operation duration.
func RecordAuthDuration(operation string, durationSeconds float64) {
	authDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// RecordAuthnCheckDuration records the middleware's token check duration.
func RecordAuthnCheckDuration(durationSeconds float64) {
	authnCheckDuration.Observe(durationSeconds)
}

// RecordForbiddenAttempt records a request rejected because the caller does not own the resource.
func RecordForbiddenAttempt(method string) {
	forbiddenAttempts.WithLabelValues(method).Inc()
}

func resultFor(status int) string {
	switch {
	case status >= 500:
		return resultError
	case status >= 400:
		return resultFailure
	default:
		return resultSuccess
	}
}

// Package http assembles the API's HTTP surface: the router, the middleware
// chain, health endpoints and request metrics. Endpoint handlers live in the
// auth and article subpackages.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
)

// Pinger reports whether the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PoolStatter exposes database/sql connection pool statistics.
type PoolStatter interface {
	Stats() sql.DBStats
}

// CircuitStater exposes the state of the database circuit breaker.
type CircuitStater interface {
	State() gobreaker.State
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"

	// poolSaturationPercent marks the pool as degraded.
	poolSaturationPercent = 80.0
)

// RootHandler answers GET / so clients can check the API is up.
type RootHandler struct{}

// ServeHTTP API 稼働確認
// @Summary      API 稼働確認
// @Tags         health
// @Produce      json
// @Success      200 {object} respond.Envelope "稼働中"
// @Router       / [get]
func (RootHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.OK(w, http.StatusOK, nil, "Article API is running")
}

// HealthHandler pings the database and reports pool statistics.
// It answers 200 while the database is reachable, 503 otherwise.
type HealthHandler struct {
	DB      Pinger
	Pool    PoolStatter
	Circuit CircuitStater // optional
	Version string
	Timeout time.Duration
}

// ServeHTTP ヘルスチェック
// @Summary      ヘルスチェック
// @Description  データベース疎通とコネクションプールの状態を返します
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse "正常"
// @Failure      503 {object} HealthResponse "データベース到達不可"
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	checks := map[string]CheckStatus{"database": h.checkDatabase(ctx)}
	if h.Circuit != nil {
		checks["circuit_breaker"] = checkCircuit(h.Circuit.State())
	}

	status, code := overall(checks), http.StatusOK
	if status == statusUnhealthy {
		code = http.StatusServiceUnavailable
		for name, c := range checks {
			if c.Status == statusUnhealthy {
				logging.FromContext(r.Context()).Warn("health check failed",
					slog.String("check", name),
					slog.String("message", c.Message))
			}
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// overall is the worst status among checks.
func overall(checks map[string]CheckStatus) string {
	status := statusHealthy
	for _, c := range checks {
		switch c.Status {
		case statusUnhealthy:
			return statusUnhealthy
		case statusDegraded:
			status = statusDegraded
		}
	}
	return status
}

func checkCircuit(state gobreaker.State) CheckStatus {
	details := map[string]any{"state": state.String()}
	switch state {
	case gobreaker.StateOpen:
		return CheckStatus{Status: statusUnhealthy, Message: "circuit open, database calls are rejected", Details: details}
	case gobreaker.StateHalfOpen:
		return CheckStatus{Status: statusDegraded, Message: "circuit half-open, trial requests allowed", Details: details}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: respond.SanitizeError(err)}
	}
	if h.Pool == nil {
		return CheckStatus{Status: statusHealthy}
	}

	stats := h.Pool.Stats()
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}
	// 0 は無制限
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{Status: statusHealthy, Details: details}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= poolSaturationPercent {
		return CheckStatus{Status: statusDegraded, Message: "connection pool utilization above 80%", Details: details}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

// ReadyHandler answers readiness probes: 200 once the database answers a ping.
type ReadyHandler struct {
	DB Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil || h.DB.PingContext(ctx) != nil {
		respond.Error(w, http.StatusServiceUnavailable, "database not ready")
		return
	}
	respond.OK(w, http.StatusOK, nil, "ready")
}

// LiveHandler answers liveness probes and always returns 200.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.OK(w, http.StatusOK, nil, "alive")
}

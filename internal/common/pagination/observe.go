package pagination

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_pagination_requests_total",
			Help: "Paginated list requests by endpoint, status and page range",
		},
		[]string{"endpoint", "status", "page_range"},
	)

	pageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "article_pagination_duration_seconds",
			Help:    "Time spent serving a paginated list",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"endpoint"},
	)
)

// Observe records one served list page in metrics and, at debug level, in
// the log. returned is the number of items on the page.
func Observe(logger *slog.Logger, endpoint string, params Params, returned, status int, elapsed time.Duration) {
	pageRequests.WithLabelValues(endpoint, strconv.Itoa(status), pageRange(params.Page)).Inc()
	pageDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	logger.Debug("paginated response",
		slog.String("endpoint", endpoint),
		slog.Int("page", params.Page),
		slog.Int("per_page", params.PerPage),
		slog.Int("returned_count", returned),
		slog.Int("status", status),
		slog.Int64("duration_ms", elapsed.Milliseconds()))
}

// pageRange keeps the page label's cardinality bounded.
func pageRange(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	}
	return "100+"
}

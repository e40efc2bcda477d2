// Package metrics provides the application's business metrics.
//
// HTTP request metrics live next to the middleware that records them;
// this package holds the counters that describe what users do:
//   - users_registered_total
//   - articles_mutations_total{op}
//   - articles_total
//
// plus RegisterDBStats for database pool statistics.
//
// Example usage:
//
//	import "article-api/internal/observability/metrics"
//
//	func afterCreate() {
//	    metrics.RecordArticleMutation(metrics.OpCreate)
//	}
package metrics

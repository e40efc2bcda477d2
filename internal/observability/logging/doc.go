// Package logging wraps log/slog for the API.
//
// Every request carries a logger in its context. The HTTP middleware seeds it
// with request_id and trace_id, the authentication middleware adds user_id,
// and handlers retrieve it with FromContext:
//
//	logger := logging.FromContext(r.Context())
//	logger.Info("article created", slog.Int64("article_id", id))
package logging

package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"article-api/internal/common/pagination"
	harticle "article-api/internal/handler/http/article"
	hauth "article-api/internal/handler/http/auth"
	"article-api/internal/handler/http/requestid"
	"article-api/internal/observability/tracing"
	artUC "article-api/internal/usecase/article"
)

// RouterConfig carries everything the router mounts.
type RouterConfig struct {
	Logger     *slog.Logger
	Auth       hauth.Service
	Articles   *artUC.Service
	Pagination pagination.Config

	DB      Pinger
	Pool    PoolStatter
	Circuit CircuitStater
	Version string

	MaxBodyBytes int64
	// Swagger mounts the OpenAPI UI under /swagger/.
	Swagger bool
}

// NewRouter builds the API handler.
//
// Middleware order, outermost first:
// request ID → tracing → request logger → recover → access log → limits → metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", RootHandler{})
	mux.Handle("GET /health", &HealthHandler{DB: cfg.DB, Pool: cfg.Pool, Circuit: cfg.Circuit, Version: cfg.Version})
	mux.Handle("GET /health/ready", &ReadyHandler{DB: cfg.DB})
	mux.Handle("GET /health/live", LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
	if cfg.Swagger {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}

	authn := hauth.Register(mux, cfg.Auth)
	harticle.Register(mux, cfg.Articles, cfg.Pagination, authn)

	return Chain(jsonFallback(mux),
		requestid.Middleware,
		tracing.Middleware,
		RequestLogger(logger),
		Recover(logger),
		Logging(logger),
		LimitRequest(cfg.MaxBodyBytes),
		MetricsMiddleware,
	)
}

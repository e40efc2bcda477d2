package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"article-api/internal/common/pagination"
	"article-api/internal/config"
	hhttp "article-api/internal/handler/http"
	pgRepo "article-api/internal/infra/adapter/persistence/postgres"
	sqliteRepo "article-api/internal/infra/adapter/persistence/sqlite"
	"article-api/internal/infra/db"
	"article-api/internal/observability/logging"
	"article-api/internal/observability/metrics"
	"article-api/internal/observability/tracing"
	"article-api/internal/repository"
	"article-api/internal/resilience/circuitbreaker"
	authservice "article-api/internal/service/auth"
	artUC "article-api/internal/usecase/article"

	_ "article-api/docs" // swagger docs
)

// @title           Article API
// @version         1.0
// @description     JWT 認証付きブログ記事 CRUD API
// @description     ユーザー登録・ログインと、記事の作成・閲覧・更新・削除を提供します。

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ServiceName: "article-api",
		Version:     cfg.Version,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("failed to flush traces", slog.Any("error", err))
		}
	}()

	conn, err := initDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := metrics.RegisterDBStats(prometheus.DefaultRegisterer, conn, "main"); err != nil {
		logger.Warn("db stats collector not registered", slog.Any("error", err))
	}

	handler, err := buildHandler(cfg, conn, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", cfg.Version),
			slog.String("db_driver", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	conn, err := db.Open(ctx, db.Config{Driver: cfg.Driver, DSN: cfg.URL, Pool: cfg.Pool})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.MigrateUp(ctx, conn, cfg.Driver); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("database ready",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", cfg.Pool.MaxOpenConns))
	return conn, nil
}

type repositories struct {
	users    repository.UserRepository
	revoked  repository.RevokedTokenRepository
	articles repository.ArticleRepository
}

// newRepositories picks the adapter family matching the driver. Every
// adapter talks through the circuit breaker.
func newRepositories(driver string, conn *sql.DB) (repositories, *circuitbreaker.Breaker) {
	cbCfg := circuitbreaker.DBConfig()
	if driver == db.DriverSQLite {
		cbCfg.IsSuccessful = circuitbreaker.IgnoreErrors(sqliteRepo.IsUniqueViolation)
		q := circuitbreaker.New(conn, cbCfg)
		return repositories{
			users:    sqliteRepo.NewUserRepo(q),
			revoked:  sqliteRepo.NewRevokedTokenRepo(q),
			articles: sqliteRepo.NewArticleRepo(q),
		}, q
	}

	cbCfg.IsSuccessful = circuitbreaker.IgnoreErrors(pgRepo.IsUniqueViolation)
	q := circuitbreaker.New(conn, cbCfg)
	return repositories{
		users:    pgRepo.NewUserRepo(q),
		revoked:  pgRepo.NewRevokedTokenRepo(q),
		articles: pgRepo.NewArticleRepo(q),
	}, q
}

// buildHandler wires services and routes.
func buildHandler(cfg *config.Config, conn *sql.DB, logger *slog.Logger) (http.Handler, error) {
	repos, breaker := newRepositories(cfg.Database.Driver, conn)

	tokens, err := authservice.NewTokenManager(authservice.TokenConfig{
		Secret:     []byte(cfg.Auth.JWTSecret),
		Issuer:     cfg.Auth.Issuer,
		TTL:        cfg.Auth.TTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	authSvc := authservice.NewAuthService(
		repos.users,
		repos.revoked,
		tokens,
		authservice.NewBcryptHasher(cfg.Auth.BcryptCost),
	)

	pageCfg := pagination.DefaultConfig()

	return hhttp.NewRouter(hhttp.RouterConfig{
		Logger:       logger,
		Auth:         authSvc,
		Articles:     &artUC.Service{Repo: repos.articles, PageSize: pageCfg.PerPage},
		Pagination:   pageCfg,
		DB:           breaker,
		Pool:         conn,
		Circuit:      breaker,
		Version:      cfg.Version,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		Swagger:      cfg.HTTP.Swagger,
	}), nil
}

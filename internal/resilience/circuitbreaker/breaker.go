// Package circuitbreaker puts a sony/gobreaker circuit in front of the
// database pool. While the circuit is open, calls fail with
// gobreaker.ErrOpenState without touching the database.
package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker"
)

// stateGauge: 0 closed, 1 half-open, 2 open.
var stateGauge = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "circuit_breaker_state",
		Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
	},
	[]string{"circuit"},
)

// Config tunes a Breaker.
type Config struct {
	Name string

	// HalfOpenRequests successful probes close the circuit again.
	HalfOpenRequests uint32
	// ResetInterval clears the closed-state counters. Zero never clears.
	ResetInterval time.Duration
	// OpenTimeout is how long the circuit stays open before probing.
	OpenTimeout time.Duration

	// The circuit opens once at least MinRequests calls were seen and
	// the failure ratio reaches TripRatio.
	MinRequests uint32
	TripRatio   float64

	// IsSuccessful reports whether an error is the caller's fault rather
	// than the database's. nil means only a nil error succeeds.
	IsSuccessful func(err error) bool
}

// DBConfig opens after five straight failures and probes again after 30s.
func DBConfig() Config {
	return Config{
		Name:             "database",
		HalfOpenRequests: 3,
		ResetInterval:    time.Minute,
		OpenTimeout:      30 * time.Second,
		MinRequests:      5,
		TripRatio:        1.0,
		IsSuccessful:     IgnoreErrors(nil),
	}
}

// IgnoreErrors builds an IsSuccessful predicate that lets sql.ErrNoRows,
// context.Canceled and anything benign matches through without counting
// them as failures.
func IgnoreErrors(benign func(error) bool) func(error) bool {
	return func(err error) bool {
		if err == nil || errors.Is(err, sql.ErrNoRows) || errors.Is(err, context.Canceled) {
			return true
		}
		return benign != nil && benign(err)
	}
}

// Breaker is a repository.Querier that routes calls through a circuit.
type Breaker struct {
	db *sql.DB
	cb *gobreaker.CircuitBreaker
}

// New wraps db.
func New(db *sql.DB, cfg Config) *Breaker {
	stateGauge.WithLabelValues(cfg.Name).Set(gaugeValue(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  cfg.HalfOpenRequests,
		Interval:     cfg.ResetInterval,
		Timeout:      cfg.OpenTimeout,
		IsSuccessful: cfg.IsSuccessful,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.Requests >= cfg.MinRequests &&
				float64(c.TotalFailures)/float64(c.Requests) >= cfg.TripRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			stateGauge.WithLabelValues(name).Set(gaugeValue(to))
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	return &Breaker{db: db, cb: cb}
}

func gaugeValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	}
	return 0
}

func (b *Breaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return v.(*sql.Rows), nil
}

func (b *Breaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return v.(sql.Result), nil
}

// PingContext pings through the circuit, so health checks fail fast while
// it is open.
func (b *Breaker) PingContext(ctx context.Context) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.db.PingContext(ctx)
	})
	return err
}

func (b *Breaker) State() gobreaker.State { return b.cb.State() }

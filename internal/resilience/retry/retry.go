// Package retry re-runs an operation with capped exponential backoff while
// its error looks transient.
package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Policy describes how often and how patiently to retry.
type Policy struct {
	Attempts int           // total tries, including the first
	Base     time.Duration // wait before the second try
	Max      time.Duration // cap on a single wait
	Jitter   float64       // extra random fraction of each wait, 0..1
}

// Startup covers a database container that becomes reachable a few
// seconds after the API process.
func Startup() Policy {
	return Policy{Attempts: 6, Base: 500 * time.Millisecond, Max: 5 * time.Second, Jitter: 0.1}
}

// Do calls fn until it succeeds, returns a permanent error, runs out of
// attempts, or ctx ends.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx); err == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry", slog.Int("attempt", attempt))
			}
			return nil
		}
		if !Retryable(err) {
			return err
		}
		if attempt == p.Attempts {
			return fmt.Errorf("gave up after %d attempts: %w", p.Attempts, err)
		}

		wait := p.wait(attempt)
		slog.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", p.Attempts),
			slog.Duration("delay", wait),
			slog.Any("error", err))

		t := time.NewTimer(wait)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}
	}
}

// wait is the pause after the given failed attempt.
func (p Policy) wait(attempt int) time.Duration {
	d := p.Base
	for i := 1; i < attempt && d < p.Max; i++ {
		d *= 2
	}
	d = min(d, p.Max)
	if p.Jitter > 0 {
		j := min(p.Jitter, 1)
		// #nosec G404 -- jitter does not need cryptographic randomness.
		d += time.Duration(rand.Float64() * j * float64(d))
	}
	return d
}

// Retryable reports whether err is a connection-level failure that may go
// away on its own.
func Retryable(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ETIMEDOUT),
		errors.Is(err, syscall.ENETUNREACH):
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// cannot_connect_now: the server is still starting up
		return pgErr.Code == "57P03"
	}
	if pgconn.SafeToRetry(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return false
}

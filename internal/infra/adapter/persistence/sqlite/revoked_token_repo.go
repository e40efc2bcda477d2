package sqlite

import (
	"context"
	"fmt"
	"time"

	"article-api/internal/repository"
)

// RevokedTokenRepo implements the RevokedTokenRepository interface using SQLite.
type RevokedTokenRepo struct{ db repository.Querier }

// NewRevokedTokenRepo creates a new SQLite-backed revocation store.
func NewRevokedTokenRepo(db repository.Querier) repository.RevokedTokenRepository {
	return &RevokedTokenRepo{db: db}
}

// Revoke records jti; a second call for the same jti is a no-op.
func (repo *RevokedTokenRepo) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	const query = `INSERT OR IGNORE INTO revoked_tokens (jti, expires_at) VALUES (?, ?)`
	if _, err := repo.db.ExecContext(ctx, query, jti, expiresAt.UTC()); err != nil {
		return fmt.Errorf("Revoke: ExecContext: %w", err)
	}
	return nil
}

// IsRevoked reports whether jti has been revoked.
func (repo *RevokedTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = ?)`
	var revoked bool
	if err := repository.QueryRow(ctx, repo.db, query, jti).Scan(&revoked); err != nil {
		return false, fmt.Errorf("IsRevoked: %w", err)
	}
	return revoked, nil
}

// PurgeExpired deletes entries that expired before the given time.
func (repo *RevokedTokenRepo) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM revoked_tokens WHERE expires_at < ?`
	res, err := repo.db.ExecContext(ctx, query, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("PurgeExpired: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("PurgeExpired: RowsAffected: %w", err)
	}
	return n, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"article-api/internal/repository"
)

type RevokedTokenRepo struct {
	db repository.Querier
}

func NewRevokedTokenRepo(db repository.Querier) repository.RevokedTokenRepository {
	return &RevokedTokenRepo{db: db}
}

func (repo *RevokedTokenRepo) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	const query = `
INSERT INTO revoked_tokens (jti, expires_at)
VALUES ($1, $2)
ON CONFLICT (jti) DO NOTHING`
	if _, err := repo.db.ExecContext(ctx, query, jti, expiresAt.UTC()); err != nil {
		return fmt.Errorf("Revoke: %w", err)
	}
	return nil
}

func (repo *RevokedTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = $1)`
	var revoked bool
	if err := repository.QueryRow(ctx, repo.db, query, jti).Scan(&revoked); err != nil {
		return false, fmt.Errorf("IsRevoked: %w", err)
	}
	return revoked, nil
}

func (repo *RevokedTokenRepo) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM revoked_tokens WHERE expires_at < $1`
	res, err := repo.db.ExecContext(ctx, query, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("PurgeExpired: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("PurgeExpired: RowsAffected: %w", err)
	}
	return n, nil
}

package repository

import (
	"context"
	"time"
)

// RevokedTokenRepository stores the IDs (jti) of tokens invalidated by logout
// or refresh. Entries only need to live until the token would have expired.
type RevokedTokenRepository interface {
	// Revoke records jti as revoked. Revoking the same jti twice is not an error.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// PurgeExpired deletes entries whose token expired before the given time
	// and returns the number of rows removed.
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the minimum HS256 key length accepted by NewTokenManager.
const MinSecretLength = 32

// TokenConfig configures token issuing and validation.
type TokenConfig struct {
	Secret     []byte
	Issuer     string
	TTL        time.Duration // lifetime of an access token
	RefreshTTL time.Duration // how long after iat a token may still be refreshed
}

// Principal is the authenticated caller extracted from a valid token.
type Principal struct {
	UserID    int64
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager signs and parses HS256 JWTs.
type TokenManager struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokenManager validates cfg and returns a manager using the wall clock.
func NewTokenManager(cfg TokenConfig) (*TokenManager, error) {
	if len(cfg.Secret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLength)
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}
	if cfg.RefreshTTL < cfg.TTL {
		cfg.RefreshTTL = cfg.TTL
	}
	return &TokenManager{cfg: cfg, now: time.Now}, nil
}

// TTL returns the access token lifetime.
func (m *TokenManager) TTL() time.Duration { return m.cfg.TTL }

// Issue signs a new token for userID.
func (m *TokenManager) Issue(userID int64) (string, *Principal, error) {
	now := m.now().Truncate(time.Second)
	p := &Principal{
		UserID:    userID,
		TokenID:   uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(m.cfg.TTL),
	}

	claims := jwt.RegisteredClaims{
		Issuer:    m.cfg.Issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        p.TokenID,
		IssuedAt:  jwt.NewNumericDate(p.IssuedAt),
		NotBefore: jwt.NewNumericDate(p.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(p.ExpiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.cfg.Secret)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrTokenSigning, err)
	}
	return signed, p, nil
}

// Parse validates signature, issuer and expiry.
func (m *TokenManager) Parse(raw string) (*Principal, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil:
		return nil, ErrInvalidToken
	}
	return principalFrom(&claims)
}

// ParseForRefresh validates signature and issuer but tolerates an expired
// token as long as it was issued within the refresh window.
func (m *TokenManager) ParseForRefresh(raw string) (*Principal, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != m.cfg.Issuer {
		return nil, ErrInvalidToken
	}

	p, err := principalFrom(&claims)
	if err != nil {
		return nil, err
	}
	if m.now().After(m.RefreshDeadline(p)) {
		return nil, ErrRefreshExpired
	}
	return p, nil
}

// RefreshDeadline is the last moment p can be exchanged for a new token.
func (m *TokenManager) RefreshDeadline(p *Principal) time.Time {
	return p.IssuedAt.Add(m.cfg.RefreshTTL)
}

// RevocationDeadline is how long a revocation of p must be remembered:
// until the token can neither authenticate nor be refreshed.
func (m *TokenManager) RevocationDeadline(p *Principal) time.Time {
	if d := m.RefreshDeadline(p); d.After(p.ExpiresAt) {
		return d
	}
	return p.ExpiresAt
}

func (m *TokenManager) keyFunc(*jwt.Token) (interface{}, error) {
	return m.cfg.Secret, nil
}

func principalFrom(c *jwt.RegisteredClaims) (*Principal, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, ErrInvalidToken
	}
	if c.ID == "" || c.IssuedAt == nil || c.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	return &Principal{
		UserID:    userID,
		TokenID:   c.ID,
		IssuedAt:  c.IssuedAt.Time,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

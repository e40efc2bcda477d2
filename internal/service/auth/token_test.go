package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenManager_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TokenConfig
		wantErr bool
	}{
		{"short secret", TokenConfig{Secret: []byte("short"), TTL: time.Hour}, true},
		{"zero ttl", TokenConfig{Secret: []byte(testSecret)}, true},
		{"ok", TokenConfig{Secret: []byte(testSecret), TTL: time.Hour}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewTokenManager(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			// refresh window is never shorter than the token itself
			assert.Equal(t, time.Hour, m.cfg.RefreshTTL)
		})
	}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	m := newTestTokens(c.Now)

	raw, issued, err := m.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)
	assert.Equal(t, c.t.Add(time.Hour), issued.ExpiresAt)

	got, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, issued.TokenID, got.TokenID)
	assert.True(t, issued.IssuedAt.Equal(got.IssuedAt))
	assert.True(t, issued.ExpiresAt.Equal(got.ExpiresAt))

	// two tokens for the same user never share a jti
	_, second, err := m.Issue(42)
	require.NoError(t, err)
	assert.NotEqual(t, issued.TokenID, second.TokenID)
}

func TestTokenManager_Parse_Errors(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	m := newTestTokens(c.Now)
	raw, _, err := m.Issue(7)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := &clock{t: c.t.Add(2 * time.Hour)}
		_, err := newTestTokens(later.Now).Parse(raw)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenManager(TokenConfig{
			Secret: []byte("ffffffffffffffffffffffffffffffff"),
			Issuer: "article-api",
			TTL:    time.Hour,
		})
		require.NoError(t, err)
		other.now = c.Now
		_, err = other.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := newTestTokens(c.Now)
		other.cfg.Issuer = "someone-else"
		_, err := other.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    "article-api",
			Subject:   "7",
			ID:        "x",
			IssuedAt:  jwt.NewNumericDate(c.t),
			ExpiresAt: jwt.NewNumericDate(c.t.Add(time.Hour)),
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Parse(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("bad subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    "article-api",
			Subject:   "abc",
			ID:        "x",
			IssuedAt:  jwt.NewNumericDate(c.t),
			ExpiresAt: jwt.NewNumericDate(c.t.Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = m.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenManager_ParseForRefresh(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	m := newTestTokens(c.Now)
	raw, issued, err := m.Issue(9)
	require.NoError(t, err)

	// expired but inside the window
	c.Advance(3 * time.Hour)
	p, err := m.ParseForRefresh(raw)
	require.NoError(t, err)
	assert.Equal(t, issued.TokenID, p.TokenID)

	// past the window
	c.Advance(14 * 24 * time.Hour)
	_, err = m.ParseForRefresh(raw)
	assert.ErrorIs(t, err, ErrRefreshExpired)

	_, err = m.ParseForRefresh("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RevocationDeadline(t *testing.T) {
	m := newTestTokens(nil)
	iat := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &Principal{IssuedAt: iat, ExpiresAt: iat.Add(time.Hour)}

	assert.Equal(t, iat.Add(14*24*time.Hour), m.RevocationDeadline(p))

	m.cfg.RefreshTTL = time.Minute
	assert.Equal(t, p.ExpiresAt, m.RevocationDeadline(p))
}

package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"article-api/internal/domain/entity"
	"article-api/internal/repository"
)

/* ───────── テスト用スタブ ───────── */

type stubUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User

	// injected failures
	getErr    error
	createErr error
	updateErr error
	existsErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[int64]*entity.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, other := range r.users {
		if other.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	now := time.Now().UTC()
	u.ID, u.CreatedAt, u.UpdatedAt = r.nextID, now, now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[u.ID]; !ok {
		return entity.NewError(entity.ErrNotFound, "user not found")
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type stubRevokedRepo struct {
	mu      sync.Mutex
	entries map[string]time.Time

	revokeErr error
	checkErr  error
	purgeErr  error
	purged    int
}

func newStubRevokedRepo() *stubRevokedRepo {
	return &stubRevokedRepo{entries: map[string]time.Time{}}
}

func (r *stubRevokedRepo) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.revokeErr != nil {
		return r.revokeErr
	}
	if _, ok := r.entries[jti]; !ok {
		r.entries[jti] = expiresAt
	}
	return nil
}

func (r *stubRevokedRepo) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.checkErr != nil {
		return false, r.checkErr
	}
	_, ok := r.entries[jti]
	return ok, nil
}

func (r *stubRevokedRepo) PurgeExpired(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purged++
	if r.purgeErr != nil {
		return 0, r.purgeErr
	}
	var n int64
	for jti, exp := range r.entries {
		if exp.Before(before) {
			delete(r.entries, jti)
			n++
		}
	}
	return n, nil
}

// plainHasher keeps tests fast; bcrypt itself is covered in password_test.go.
type plainHasher struct{ hashErr error }

func (h plainHasher) Hash(pw string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + pw, nil
}

func (plainHasher) Compare(hash, pw string) error {
	if hash != "hashed:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokens(now func() time.Time) *TokenManager {
	m, err := NewTokenManager(TokenConfig{
		Secret:     []byte(testSecret),
		Issuer:     "article-api",
		TTL:        time.Hour,
		RefreshTTL: 14 * 24 * time.Hour,
	})
	if err != nil {
		panic(err)
	}
	if now != nil {
		m.now = now
	}
	return m
}

// clock is a settable time source for token tests.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

package auth

import (
	"context"
	"errors"
	"time"

	"article-api/internal/domain/entity"
	authservice "article-api/internal/service/auth"
)

/* ───────── スタブ実装 ───────── */

var errStore = errors.New("db down")

var annUser = &entity.User{
	ID:           1,
	Name:         "Ann",
	Email:        "ann@example.com",
	PasswordHash: "$2a$10$secret",
	CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	UpdatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

// stubService はテーブルごとに返り値を差し替える
type stubService struct {
	principal *authservice.Principal
	authErr   error

	result *authservice.AuthResult
	err    error

	user *entity.User

	gotRegister authservice.RegisterInput
	gotProfile  authservice.ProfileInput
	gotToken    string
	gotEmail    string
	logouts     int
}

func (s *stubService) Authenticate(_ context.Context, raw string) (*authservice.Principal, error) {
	s.gotToken = raw
	if s.authErr != nil {
		return nil, s.authErr
	}
	if raw == "" {
		return nil, authservice.ErrMissingToken
	}
	return s.principal, nil
}

func (s *stubService) Register(_ context.Context, in authservice.RegisterInput) (*authservice.AuthResult, error) {
	s.gotRegister = in
	return s.result, s.err
}

func (s *stubService) Login(_ context.Context, email, _ string) (*authservice.AuthResult, error) {
	s.gotEmail = email
	return s.result, s.err
}

func (s *stubService) Logout(_ context.Context, _ *authservice.Principal) error {
	s.logouts++
	return s.err
}

func (s *stubService) Refresh(_ context.Context, raw string) (*authservice.AuthResult, error) {
	s.gotToken = raw
	return s.result, s.err
}

func (s *stubService) CurrentUser(_ context.Context, _ *authservice.Principal) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubService) UpdateProfile(_ context.Context, _ *authservice.Principal, in authservice.ProfileInput) (*entity.User, error) {
	s.gotProfile = in
	if s.err != nil {
		return nil, s.err
	}
	u := *s.user
	u.Name, u.Email = in.Name, in.Email
	return &u, nil
}

func annPrincipal() *authservice.Principal {
	now := time.Now()
	return &authservice.Principal{UserID: 1, TokenID: "jti-1", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
}

// Package auth provides the HTTP surface of user accounts: registration,
// login, logout, token refresh, the profile endpoints and the bearer-token
// middleware that protects every other route.
package auth

import (
	"context"

	"article-api/internal/domain/entity"
	authservice "article-api/internal/service/auth"
)

// Authenticator resolves a raw bearer token into a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (*authservice.Principal, error)
}

// Service is the subset of *authservice.AuthService used by the handlers.
type Service interface {
	Authenticator
	Register(ctx context.Context, in authservice.RegisterInput) (*authservice.AuthResult, error)
	Login(ctx context.Context, email, password string) (*authservice.AuthResult, error)
	Logout(ctx context.Context, p *authservice.Principal) error
	Refresh(ctx context.Context, raw string) (*authservice.AuthResult, error)
	CurrentUser(ctx context.Context, p *authservice.Principal) (*entity.User, error)
	UpdateProfile(ctx context.Context, p *authservice.Principal, in authservice.ProfileInput) (*entity.User, error)
}

var _ Service = (*authservice.AuthService)(nil)

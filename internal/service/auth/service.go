// Package auth implements registration, login and bearer-token
// authentication for API users.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"article-api/internal/domain/entity"
	"article-api/internal/repository"
)

// RegisterInput is the payload accepted by Register.
type RegisterInput struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=6,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// ProfileInput is the payload accepted by UpdateProfile.
type ProfileInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// AuthResult is returned by every operation that issues a token.
type AuthResult struct {
	Token     string
	User      *entity.User
	ExpiresIn int64 // seconds
}

// AuthService owns user credentials and token lifecycle.
type AuthService struct {
	users   repository.UserRepository
	revoked repository.RevokedTokenRepository
	tokens  *TokenManager
	hasher  PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(
	users repository.UserRepository,
	revoked repository.RevokedTokenRepository,
	tokens *TokenManager,
	hasher PasswordHasher,
) *AuthService {
	return &AuthService{users: users, revoked: revoked, tokens: tokens, hasher: hasher}
}

// Register creates a user and signs them in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = entity.NormalizeEmail(in.Email)
	if err := entity.Validate(in); err != nil {
		return nil, err
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("The password field must not be greater than %d characters.", maxPasswordBytes),
		}
	}

	taken, err := s.users.ExistsByEmail(ctx, in.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("register: check email: %w", err)
	}
	if taken {
		return nil, emailTakenError()
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &entity.User{Name: in.Name, Email: in.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	return s.issue(user)
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		// keep timing close to the known-user path
		_ = s.hasher.Compare(s.dummy(), password)
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

// Authenticate resolves a raw bearer token into a Principal.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*Principal, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}
	p, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNotRevoked(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Logout revokes the token behind p.
func (s *AuthService) Logout(ctx context.Context, p *Principal) error {
	if err := s.revoked.Revoke(ctx, p.TokenID, s.tokens.RevocationDeadline(p)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.purgeRevoked(ctx)
	return nil
}

// CurrentUser loads the user behind p.
func (s *AuthService) CurrentUser(ctx context.Context, p *Principal) (*entity.User, error) {
	user, err := s.users.Get(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile changes the name and email of the user behind p.
func (s *AuthService) UpdateProfile(ctx context.Context, p *Principal, in ProfileInput) (*entity.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = entity.NormalizeEmail(in.Email)
	if err := entity.Validate(in); err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByEmail(ctx, in.Email, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("update profile: check email: %w", err)
	}
	if taken {
		return nil, emailTakenError()
	}

	user, err := s.CurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}
	user.Name = in.Name
	user.Email = in.Email

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, repository.ErrDuplicateEmail
		case errors.Is(err, entity.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// Refresh exchanges a token still inside its refresh window for a new one.
// The old token is revoked.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*AuthResult, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}
	p, err := s.tokens.ParseForRefresh(raw)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNotRevoked(ctx, p); err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	if err := s.revoked.Revoke(ctx, p.TokenID, s.tokens.RevocationDeadline(p)); err != nil {
		return nil, fmt.Errorf("refresh: revoke: %w", err)
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *entity.User) (*AuthResult, error) {
	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     token,
		User:      user,
		ExpiresIn: int64(s.tokens.TTL() / time.Second),
	}, nil
}

func (s *AuthService) ensureNotRevoked(ctx context.Context, p *Principal) error {
	revoked, err := s.revoked.IsRevoked(ctx, p.TokenID)
	if err != nil {
		return fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return ErrTokenRevoked
	}
	return nil
}

// purgeRevoked drops revocations that can no longer matter.
// Failures are logged and otherwise ignored.
func (s *AuthService) purgeRevoked(ctx context.Context) {
	n, err := s.revoked.PurgeExpired(ctx, s.tokens.now())
	if err != nil {
		slog.WarnContext(ctx, "purge revoked tokens failed", slog.Any("error", err))
		return
	}
	if n > 0 {
		slog.DebugContext(ctx, "purged revoked tokens", slog.Int64("count", n))
	}
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("article-api-dummy-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

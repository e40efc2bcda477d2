package auth

import (
	"errors"

	"article-api/internal/domain/entity"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
	ErrInvalidCredentials = entity.NewError(entity.ErrUnauthorized, "Invalid credentials")

	// ErrMissingToken indicates a request without a bearer token.
	ErrMissingToken = entity.NewError(entity.ErrUnauthorized, "Token not provided")

	// ErrInvalidToken covers malformed tokens, bad signatures and unknown subjects.
	ErrInvalidToken = entity.NewError(entity.ErrUnauthorized, "Token is invalid")

	// ErrTokenExpired indicates a well-formed token past its exp claim.
	ErrTokenExpired = entity.NewError(entity.ErrUnauthorized, "Token has expired")

	// ErrTokenRevoked indicates a token invalidated by logout or refresh.
	ErrTokenRevoked = entity.NewError(entity.ErrUnauthorized, "Token has been revoked")

	// ErrRefreshExpired indicates a token outside its refresh window.
	ErrRefreshExpired = entity.NewError(entity.ErrUnauthorized, "Token can no longer be refreshed")

	// ErrUserNotFound indicates the authenticated user no longer exists.
	ErrUserNotFound = entity.NewError(entity.ErrNotFound, "User not found")

	// ErrTokenSigning wraps failures to sign a new token.
	ErrTokenSigning = errors.New("could not create token")
)

func emailTakenError() error {
	return &entity.ValidationError{Field: "email", Message: "The email has already been taken."}
}

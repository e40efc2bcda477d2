package auth

import (
	"time"

	"article-api/internal/domain/entity"
)

// UserDTO is the public JSON form of a user. The password hash is never included.
type UserDTO struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ann"`
	Email     string    `json:"email" example:"ann@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-02T03:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2026-01-02T03:04:05Z"`
}

// NewUserDTO converts a user entity.
func NewUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type registerRequest struct {
	Name                 string `json:"name" example:"Ann"`
	Email                string `json:"email" example:"ann@example.com"`
	Password             string `json:"password" example:"secret1"`
	PasswordConfirmation string `json:"password_confirmation" example:"secret1"`
}

type loginRequest struct {
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"secret1"`
}

type profileRequest struct {
	Name  string `json:"name" example:"Ann"`
	Email string `json:"email" example:"ann@example.com"`
}

type registerResponse struct {
	Token string  `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  UserDTO `json:"user"`
}

type tokenResponse struct {
	Token     string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User      *UserDTO `json:"user,omitempty"`
	ExpiresIn int64    `json:"expires_in" example:"3600"`
}

package entity

import "time"

// User represents a registered account.
// PasswordHash holds a bcrypt hash and is never serialized.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Author is the public summary of a user embedded in article responses.
type Author struct {
	ID    int64
	Name  string
	Email string
}

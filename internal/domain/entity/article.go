// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as User and Article, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a blog article owned by a single user.
type Article struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID is the author of the article.
func (a *Article) IsOwnedBy(userID int64) bool {
	return a != nil && userID > 0 && a.AuthorID == userID
}

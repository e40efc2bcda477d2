// Package article provides HTTP handlers for article endpoints: listing,
// reading, and the ownership-gated create, update and delete routes.
package article

import (
	"time"

	"article-api/internal/repository"
)

// AuthorDTO is the author summary embedded in every article.
type AuthorDTO struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Ann"`
	Email string `json:"email" example:"ann@example.com"`
}

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Hello"`
	Content   string    `json:"content" example:"World"`
	AuthorID  int64     `json:"author_id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-02T03:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2026-01-02T03:04:05Z"`
	Author    AuthorDTO `json:"author"`
}

// NewDTO converts an article joined with its author.
func NewDTO(a repository.ArticleWithAuthor) DTO {
	return DTO{
		ID:        a.Article.ID,
		Title:     a.Article.Title,
		Content:   a.Article.Content,
		AuthorID:  a.Article.AuthorID,
		CreatedAt: a.Article.CreatedAt,
		UpdatedAt: a.Article.UpdatedAt,
		Author: AuthorDTO{
			ID:    a.Author.ID,
			Name:  a.Author.Name,
			Email: a.Author.Email,
		},
	}
}

// articleRequest is the body of create and update.
type articleRequest struct {
	Title   string `json:"title" example:"Hello"`
	Content string `json:"content" example:"World"`
}

package repository

import (
	"context"

	"article-api/internal/domain/entity"
)

// ArticleWithAuthor represents an article along with its author summary.
type ArticleWithAuthor struct {
	Article *entity.Article
	Author  entity.Author
}

// ArticleFilter narrows list and count queries.
type ArticleFilter struct {
	AuthorID *int64 // Optional: only articles written by this user
}

type ArticleRepository interface {
	// ListWithAuthorPaginated returns one page of articles joined with their authors,
	// newest first (created_at DESC, id DESC).
	ListWithAuthorPaginated(ctx context.Context, filter ArticleFilter, offset, limit int) ([]ArticleWithAuthor, error)
	// CountArticles returns the number of articles matching filter.
	CountArticles(ctx context.Context, filter ArticleFilter) (int64, error)
	// Get returns (nil, nil) if the article does not exist.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetWithAuthor returns (nil, nil) if the article does not exist.
	GetWithAuthor(ctx context.Context, id int64) (*ArticleWithAuthor, error)
	// Create inserts the article and fills in ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, article *entity.Article) error
	// Update persists title and content and refreshes UpdatedAt.
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
}

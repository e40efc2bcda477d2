// Package article provides use cases for managing articles: listing,
// reading, and the ownership-gated create, update and delete operations.
package article

import "article-api/internal/domain/entity"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = entity.NewError(entity.ErrNotFound, "Article not found")

	// ErrForbiddenUpdate is returned when the caller is not the author.
	ErrForbiddenUpdate = entity.NewError(entity.ErrForbidden, "Unauthorized. You can only update your own articles.")

	// ErrForbiddenDelete is returned when the caller is not the author.
	ErrForbiddenDelete = entity.NewError(entity.ErrForbidden, "Unauthorized. You can only delete your own articles.")
)

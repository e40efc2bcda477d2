package article

import "article-api/internal/domain/entity"

type action int

const (
	actionUpdate action = iota
	actionDelete
)

// authorizeOwner is the only place that decides who may mutate an article.
func authorizeOwner(art *entity.Article, callerID int64, act action) error {
	if art.IsOwnedBy(callerID) {
		return nil
	}
	if act == actionDelete {
		return ErrForbiddenDelete
	}
	return ErrForbiddenUpdate
}

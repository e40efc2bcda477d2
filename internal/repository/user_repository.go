package repository

import (
	"context"

	"article-api/internal/domain/entity"
)

// ErrDuplicateEmail is returned by Create and Update when the users.email
// unique index rejects the write.
var ErrDuplicateEmail = entity.NewError(entity.ErrConflict, "email already exists")

type UserRepository interface {
	// Create inserts the user and fills in ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, user *entity.User) error
	// Get returns (nil, nil) if the user does not exist.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmail returns (nil, nil) if no user has the given email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsByEmail reports whether a user other than excludeID owns email.
	// Pass excludeID = 0 to check against every user.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	// Update persists name, email and password hash and refreshes UpdatedAt.
	Update(ctx context.Context, user *entity.User) error
}

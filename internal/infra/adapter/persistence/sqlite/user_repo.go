package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"article-api/internal/domain/entity"
	"article-api/internal/repository"
)

// UserRepo implements the UserRepository interface using SQLite.
type UserRepo struct{ db repository.Querier }

// NewUserRepo creates a new SQLite-backed user repository.
func NewUserRepo(db repository.Querier) repository.UserRepository {
	return &UserRepo{db: db}
}

const userColumns = `id, name, email, password, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and reads back the generated id.
func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (name, email, password, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`
	now := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, now, now)
	if IsUniqueViolation(err) {
		return repository.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	user.ID = id
	user.CreatedAt, user.UpdatedAt = now, now
	return nil
}

// Get retrieves a user by id. Returns (nil, nil) if not found.
func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = ? LIMIT 1`
	user, err := scanUser(repository.QueryRow(ctx, repo.db, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) if not found.
func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = ? LIMIT 1`
	user, err := scanUser(repository.QueryRow(ctx, repo.db, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return user, nil
}

// ExistsByEmail checks whether another user already owns email.
func (repo *UserRepo) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ? AND id <> ?)`
	var exists bool
	if err := repository.QueryRow(ctx, repo.db, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return exists, nil
}

// Update overwrites name, email and password hash.
func (repo *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
UPDATE users
SET name = ?, email = ?, password = ?, updated_at = ?
WHERE id = ?`
	now := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, now, user.ID)
	if IsUniqueViolation(err) {
		return repository.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: user %d: %w", user.ID, entity.ErrNotFound)
	}
	user.UpdatedAt = now
	return nil
}

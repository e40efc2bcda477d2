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

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct{ db repository.Querier }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db repository.Querier) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleWithAuthorSelect = `
SELECT a.id, a.title, a.content, a.author_id, a.created_at, a.updated_at,
       u.id, u.name, u.email
FROM articles a
INNER JOIN users u ON u.id = a.author_id`

func scanArticleWithAuthor(row interface{ Scan(...any) error }) (repository.ArticleWithAuthor, error) {
	var a entity.Article
	var au entity.Author
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt,
		&au.ID, &au.Name, &au.Email)
	return repository.ArticleWithAuthor{Article: &a, Author: au}, err
}

func whereClause(filter repository.ArticleFilter) (string, []any) {
	if filter.AuthorID == nil {
		return "", nil
	}
	return "\nWHERE a.author_id = ?", []any{*filter.AuthorID}
}

// ListWithAuthorPaginated retrieves one page of articles with their authors, newest first.
func (repo *ArticleRepo) ListWithAuthorPaginated(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]repository.ArticleWithAuthor, error) {
	where, args := whereClause(filter)
	query := articleWithAuthorSelect + where + `
ORDER BY a.created_at DESC, a.id DESC
LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListWithAuthorPaginated: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithAuthor, 0, limit)
	for rows.Next() {
		item, err := scanArticleWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("ListWithAuthorPaginated: Scan: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWithAuthorPaginated: rows.Err: %w", err)
	}

	return result, nil
}

// CountArticles returns the number of articles matching filter.
func (repo *ArticleRepo) CountArticles(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	where, args := whereClause(filter)
	query := `SELECT COUNT(*) FROM articles a` + where
	var count int64
	if err := repository.QueryRow(ctx, repo.db, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

// Get retrieves an article by id. Returns (nil, nil) if not found.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content, author_id, created_at, updated_at
FROM articles
WHERE id = ?
LIMIT 1`
	var a entity.Article
	err := repository.QueryRow(ctx, repo.db, query, id).
		Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &a, nil
}

// GetWithAuthor retrieves an article and its author. Returns (nil, nil) if not found.
func (repo *ArticleRepo) GetWithAuthor(ctx context.Context, id int64) (*repository.ArticleWithAuthor, error) {
	query := articleWithAuthorSelect + `
WHERE a.id = ?
LIMIT 1`
	item, err := scanArticleWithAuthor(repository.QueryRow(ctx, repo.db, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetWithAuthor: %w", err)
	}
	return &item, nil
}

// Create inserts an article and reads back the generated id.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (title, content, author_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`
	now := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.AuthorID, now, now)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	article.ID = id
	article.CreatedAt, article.UpdatedAt = now, now
	return nil
}

// Update overwrites title and content.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles
SET title = ?, content = ?, updated_at = ?
WHERE id = ?`
	now := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query, article.Title, article.Content, now, article.ID)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: article %d: %w", article.ID, entity.ErrNotFound)
	}
	article.UpdatedAt = now
	return nil
}

// Delete removes an article by id.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Delete: article %d: %w", id, entity.ErrNotFound)
	}
	return nil
}

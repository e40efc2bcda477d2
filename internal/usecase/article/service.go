package article

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"article-api/internal/common/pagination"
	"article-api/internal/domain/entity"
	"article-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// UpdateInput represents a full replacement of an article's title and content.
type UpdateInput struct {
	ID      int64  `json:"-"`
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo     repository.ArticleRepository
	PageSize int // zero means pagination.DefaultPerPage
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithAuthor
	Pagination pagination.Metadata
}

// List returns one page of all articles, newest first.
func (s *Service) List(ctx context.Context, page int) (*PaginatedResult, error) {
	res, err := s.listPage(ctx, repository.ArticleFilter{}, page)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return res, nil
}

// ListByAuthor returns one page of the articles written by authorID, newest first.
func (s *Service) ListByAuthor(ctx context.Context, authorID int64, page int) (*PaginatedResult, error) {
	res, err := s.listPage(ctx, repository.ArticleFilter{AuthorID: &authorID}, page)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return res, nil
}

func (s *Service) listPage(ctx context.Context, filter repository.ArticleFilter, page int) (*PaginatedResult, error) {
	params := pagination.Params{Page: page, PerPage: s.PageSize}.WithDefaults(pagination.DefaultConfig())

	var (
		total    int64
		articles []repository.ArticleWithAuthor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.Repo.CountArticles(gctx, filter)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		rows, err := s.Repo.ListWithAuthorPaginated(gctx, filter, params.Offset(), params.PerPage)
		if err != nil {
			return fmt.Errorf("page: %w", err)
		}
		articles = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if articles == nil {
		articles = []repository.ArticleWithAuthor{}
	}
	return &PaginatedResult{
		Data:       articles,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// Get retrieves a single article with its author.
// Returns ErrArticleNotFound for a non-positive or unknown ID.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleWithAuthor, error) {
	if id <= 0 {
		return nil, ErrArticleNotFound
	}

	art, err := s.Repo.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Create stores a new article authored by callerID.
func (s *Service) Create(ctx context.Context, callerID int64, in CreateInput) (*repository.ArticleWithAuthor, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := entity.Validate(in); err != nil {
		return nil, err
	}

	art := &entity.Article{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: callerID,
	}
	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return s.reload(ctx, art.ID)
}

// CheckOwner reports whether callerID may modify article id, returning
// ErrArticleNotFound or an ownership error when it may not. Handlers call it
// before reading the request body; Update repeats the check.
func (s *Service) CheckOwner(ctx context.Context, callerID, id int64) error {
	art, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	return authorizeOwner(art, callerID, actionUpdate)
}

// Update replaces title and content of an article owned by callerID.
// The order of checks is: existence, ownership, then input validation.
func (s *Service) Update(ctx context.Context, callerID int64, in UpdateInput) (*repository.ArticleWithAuthor, error) {
	art, err := s.load(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(art, callerID, actionUpdate); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	if err := entity.Validate(in); err != nil {
		return nil, err
	}

	art.Title = in.Title
	art.Content = in.Content
	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return s.reload(ctx, art.ID)
}

// Delete removes an article owned by callerID.
func (s *Service) Delete(ctx context.Context, callerID, id int64) error {
	art, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(art, callerID, actionDelete); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrArticleNotFound
	}
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

func (s *Service) reload(ctx context.Context, id int64) (*repository.ArticleWithAuthor, error) {
	art, err := s.Repo.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload article: %w", err)
	}
	if art == nil {
		return nil, fmt.Errorf("reload article %d: %w", id, ErrArticleNotFound)
	}
	return art, nil
}

package article_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"article-api/internal/common/pagination"
	"article-api/internal/domain/entity"
	"article-api/internal/handler/http/article"
	"article-api/internal/handler/http/auth"
	"article-api/internal/repository"
	authservice "article-api/internal/service/auth"
	artUC "article-api/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

var errDB = errors.New("db down")

type memRepo struct {
	mu      sync.Mutex
	data    map[int64]entity.Article
	authors map[int64]entity.Author
	nextID  int64
	clock   time.Time

	err error
}

func newMemRepo() *memRepo {
	return &memRepo{
		data: map[int64]entity.Article{},
		authors: map[int64]entity.Author{
			1: {ID: 1, Name: "Ann", Email: "ann@example.com"},
			2: {ID: 2, Name: "Bob", Email: "bob@example.com"},
		},
		nextID: 1,
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memRepo) join(a entity.Article) repository.ArticleWithAuthor {
	return repository.ArticleWithAuthor{Article: &a, Author: m.authors[a.AuthorID]}
}

func (m *memRepo) ListWithAuthorPaginated(_ context.Context, f repository.ArticleFilter, offset, limit int) ([]repository.ArticleWithAuthor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var all []entity.Article
	for _, a := range m.data {
		if f.AuthorID == nil || a.AuthorID == *f.AuthorID {
			all = append(all, a)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	var out []repository.ArticleWithAuthor
	for i := offset; i < len(all) && i < offset+limit; i++ {
		out = append(out, m.join(all[i]))
	}
	return out, nil
}

func (m *memRepo) CountArticles(_ context.Context, f repository.ArticleFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, a := range m.data {
		if f.AuthorID == nil || a.AuthorID == *f.AuthorID {
			n++
		}
	}
	return n, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *memRepo) GetWithAuthor(_ context.Context, id int64) (*repository.ArticleWithAuthor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	out := m.join(a)
	return &out, nil
}

func (m *memRepo) Create(_ context.Context, a *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.clock = m.clock.Add(time.Second)
	a.ID, a.CreatedAt, a.UpdatedAt = m.nextID, m.clock, m.clock
	m.nextID++
	m.data[a.ID] = *a
	return nil
}

func (m *memRepo) Update(_ context.Context, a *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.clock = m.clock.Add(time.Second)
	a.UpdatedAt = m.clock
	m.data[a.ID] = *a
	return nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.data, id)
	return nil
}

// tokenAuth はトークン文字列をそのままユーザーIDに対応付ける
type tokenAuth map[string]int64

func (t tokenAuth) Authenticate(_ context.Context, raw string) (*authservice.Principal, error) {
	id, ok := t[raw]
	if !ok {
		return nil, authservice.ErrInvalidToken
	}
	return &authservice.Principal{UserID: id, TokenID: raw}, nil
}

/* ───────── ヘルパ ───────── */

const (
	annToken = "ann-token"
	bobToken = "bob-token"
)

type env struct {
	repo *memRepo
	svc  *artUC.Service
	mux  *http.ServeMux
}

func newEnv() *env {
	repo := newMemRepo()
	svc := &artUC.Service{Repo: repo}
	mux := http.NewServeMux()
	authn := auth.Authn(tokenAuth{annToken: 1, bobToken: 2})
	article.Register(mux, svc, pagination.DefaultConfig(), authn)
	return &env{repo: repo, svc: svc, mux: mux}
}

func (e *env) seed(t *testing.T, authorID int64, title string) int64 {
	t.Helper()
	a, err := e.svc.Create(context.Background(), authorID, artUC.CreateInput{Title: title, Content: "content"})
	require.NoError(t, err)
	return a.Article.ID
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e *env) do(t *testing.T, method, path, body, token string) (int, envelope) {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, r)

	var out envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return w.Code, out
}

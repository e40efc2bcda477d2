package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"article-api/internal/domain/entity"
	pg "article-api/internal/infra/adapter/persistence/postgres"
	"article-api/internal/repository"
)

var userCols = []string{"id", "name", "email", "password", "created_at", "updated_at"}

func TestUserRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ann", "ann@x.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	u := &entity.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "hash"}
	if err := pg.NewUserRepo(db).Create(context.Background(), u); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if u.ID != 1 || u.CreatedAt.IsZero() {
		t.Fatalf("user not populated: %+v", u)
	}
}

func TestUserRepo_Create_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := pg.NewUserRepo(db).Create(context.Background(), &entity.User{Name: "Ann", Email: "ann@x.com"})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("duplicate should carry ErrConflict, got %v", err)
	}
}

func TestUserRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	want := &entity.User{ID: 1, Name: "Ann", Email: "ann@x.com", PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "Ann", "ann@x.com", "hash", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(userCols))

	repo := pg.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	missing, err := repo.Get(context.Background(), 2)
	if err != nil || missing != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", missing, err)
	}
}

func TestUserRepo_GetByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ann@x.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "Ann", "ann@x.com", "hash", now, now))

	got, err := pg.NewUserRepo(db).GetByEmail(context.Background(), "ann@x.com")
	if err != nil || got == nil || got.ID != 1 {
		t.Fatalf("GetByEmail = (%v, %v)", got, err)
	}
}

func TestUserRepo_ExistsByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)")).
		WithArgs("ann@x.com", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := pg.NewUserRepo(db).ExistsByEmail(context.Background(), "ann@x.com", 3)
	if err != nil || !exists {
		t.Fatalf("ExistsByEmail = (%v, %v), want (true, nil)", exists, err)
	}
}

func TestUserRepo_Update(t *testing.T) {
	tests := []struct {
		name    string
		result  func(e *sqlmock.ExpectedExec)
		wantErr error
	}{
		{
			name:   "updated",
			result: func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 1)) },
		},
		{
			name:    "missing user",
			result:  func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) },
			wantErr: entity.ErrNotFound,
		},
		{
			name:    "email taken",
			result:  func(e *sqlmock.ExpectedExec) { e.WillReturnError(&pgconn.PgError{Code: "23505"}) },
			wantErr: repository.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			tt.result(mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
				WithArgs("Ann", "new@x.com", "hash", sqlmock.AnyArg(), int64(1)))

			err := pg.NewUserRepo(db).Update(context.Background(),
				&entity.User{ID: 1, Name: "Ann", Email: "new@x.com", PasswordHash: "hash"})
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Update err=%v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !pg.IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("23505 should be a unique violation")
	}
	if pg.IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation is not a unique violation")
	}
	if pg.IsUniqueViolation(errors.New("x")) || pg.IsUniqueViolation(nil) {
		t.Error("plain errors are not unique violations")
	}
}

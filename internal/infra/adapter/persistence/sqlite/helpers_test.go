package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"article-api/internal/domain/entity"
	"article-api/internal/infra/adapter/persistence/sqlite"
	"article-api/internal/infra/db"
)

var dbSeq atomic.Int64

// openTestDB returns a migrated, private in-memory database.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:sqlite_repo_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	conn, err := db.Open(context.Background(), db.Config{
		Driver: db.DriverSQLite,
		DSN:    dsn,
		Pool:   db.DefaultConnectionConfig(),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.MigrateUp(context.Background(), conn, db.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func mustCreateUser(t *testing.T, conn *sql.DB, name, email string) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Email: email, PasswordHash: "hash"}
	if err := sqlite.NewUserRepo(conn).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

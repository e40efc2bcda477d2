package repository

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB used by the persistence adapters.
// Both *sql.DB and the circuit-breaker wrapper satisfy it.
//
// There is no QueryRowContext: single-row reads go through QueryRow so that
// every statement reaches the database via QueryContext or ExecContext.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Row is the result of QueryRow. Like *sql.Row, its error is deferred to Scan.
type Row struct {
	rows *sql.Rows
	err  error
}

// QueryRow runs a query expected to return at most one row.
func QueryRow(ctx context.Context, q Querier, query string, args ...any) *Row {
	rows, err := q.QueryContext(ctx, query, args...)
	return &Row{rows: rows, err: err}
}

// Scan copies the first row into dest and closes the result set.
// It returns sql.ErrNoRows when the query produced no rows.
func (r *Row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	defer r.rows.Close()

	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := r.rows.Scan(dest...); err != nil {
		return err
	}
	return r.rows.Close()
}

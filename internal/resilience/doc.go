// Package resilience groups the fault-tolerance helpers around database
// access: circuitbreaker guards the pool at runtime and retry waits for
// the database at startup.
//
//	q := circuitbreaker.New(conn, circuitbreaker.DBConfig())
//	repo := postgres.NewArticleRepo(q)
package resilience

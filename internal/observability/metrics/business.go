package metrics

import (
	"database/sql"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Article mutation operations.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// RecordUserRegistered increments the registration counter.
func RecordUserRegistered() {
	UsersRegisteredTotal.Inc()
}

// RecordArticleMutation counts a successful create, update or delete.
func RecordArticleMutation(op string) {
	ArticleMutationsTotal.WithLabelValues(op).Inc()
}

// UpdateArticlesTotal updates the total count of articles in the database.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// RegisterDBStats exposes connection pool statistics of db under the
// go_sql_* metric family, labelled with dbName.
// Registering the same name twice is not an error.
func RegisterDBStats(reg prometheus.Registerer, db *sql.DB, dbName string) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	err := reg.Register(collectors.NewDBStatsCollector(db, dbName))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}

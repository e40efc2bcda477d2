package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track application-specific operations
var (
	// UsersRegisteredTotal counts successful registrations.
	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of registered users",
		},
	)

	// ArticleMutationsTotal counts successful article writes by operation.
	ArticleMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_mutations_total",
			Help: "Total number of article mutations by operation",
		},
		[]string{"op"}, // op: create | update | delete
	)

	// ArticlesTotal tracks the number of articles seen by the last unfiltered list request.
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the database",
		},
	)
)

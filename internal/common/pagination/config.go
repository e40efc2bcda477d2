// Package pagination provides offset-based pagination helpers shared by the
// list endpoints: query parsing, offset math, response metadata and metrics.
package pagination

// DefaultPerPage is the fixed number of items returned per page.
const DefaultPerPage = 10

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage int // Page used when ?page is missing or invalid
	PerPage     int // Items per page
}

// DefaultConfig returns the default pagination configuration: page=1, per_page=10.
func DefaultConfig() Config {
	return Config{
		DefaultPage: 1,
		PerPage:     DefaultPerPage,
	}
}

package pagination

import (
	"math"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page    int // 1-based page number
	PerPage int // Items per page
}

// ParseQueryParams reads ?page from the request.
// A missing, non-numeric or non-positive value falls back to config.DefaultPage;
// the endpoint never rejects a request because of its page parameter.
func ParseQueryParams(r *http.Request, config Config) Params {
	params := Params{
		Page:    config.DefaultPage,
		PerPage: config.PerPage,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 1 {
			params.Page = page
		}
	}

	return params.WithDefaults(config)
}

// WithDefaults replaces non-positive fields with values from config.
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = config.PerPage
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if limit := MaxPage(p.PerPage); p.Page > limit {
		p.Page = limit
	}
	return p
}

// MaxPage is the highest page whose offset still fits in an int.
// Anything above it is necessarily past the last row.
func MaxPage(perPage int) int {
	if perPage <= 0 {
		return math.MaxInt
	}
	return math.MaxInt / perPage
}

// Offset is the number of rows before this page. Pages below 1 count as 1,
// and the result never goes negative.
func (p Params) Offset() int {
	if p.Page < 1 || p.PerPage <= 0 {
		return 0
	}
	page := min(p.Page, MaxPage(p.PerPage))
	return (page - 1) * p.PerPage
}

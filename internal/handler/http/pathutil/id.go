// Package pathutil parses path parameters and normalizes request paths for
// use as low-cardinality metric labels.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a positive decimal ID.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// PathID reads the named wildcard of a ServeMux pattern such as
// "GET /articles/{id}" and parses it with ParseID.
func PathID(r *http.Request, name string) (int64, error) {
	return ParseID(r.PathValue(name))
}

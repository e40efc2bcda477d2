package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes. Everything else is reported as-is.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/[^/]+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// staticRoutes are the fixed paths served by the API.
var staticRoutes = map[string]struct{}{
	"/": {}, "/health": {}, "/health/ready": {}, "/health/live": {}, "/metrics": {},
	"/register": {}, "/login": {}, "/logout": {}, "/refresh": {},
	"/user": {}, "/articles": {}, "/my-articles": {},
}

// Unmatched is the label for any path the API does not serve.
const Unmatched = "unmatched"

// NormalizePath converts dynamic URL paths to a template so that metric
// label cardinality stays bounded:
//
//	NormalizePath("/articles/123")        // "/articles/:id"
//	NormalizePath("/articles/123?page=1") // "/articles/:id"
//	NormalizePath("/my-articles/")        // "/my-articles"
//	NormalizePath("/health")              // "/health"
//	NormalizePath("/wp-login.php")        // "unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticRoutes[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return Unmatched
}

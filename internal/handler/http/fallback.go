package http

import (
	"net/http"

	"article-api/internal/handler/http/respond"
)

// jsonFallback serves requests that match no route with the JSON envelope
// instead of ServeMux's plain-text 404 and 405 replies. Redirects issued by
// the mux (trailing slash, path cleaning) still go through unchanged.
func jsonFallback(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, pattern := mux.Handler(r)
		if pattern != "" {
			mux.ServeHTTP(w, r)
			return
		}

		// Let the mux decide between 404 and 405 and compute Allow.
		rec := &statusCapture{header: http.Header{}}
		h.ServeHTTP(rec, r)

		code := rec.code
		if code == 0 {
			code = http.StatusNotFound
		}
		if allow := rec.header.Get("Allow"); allow != "" {
			w.Header().Set("Allow", allow)
		}
		respond.Error(w, code, http.StatusText(code))
	})
}

// statusCapture records the status and headers a handler sets and drops its body.
type statusCapture struct {
	header http.Header
	code   int
}

func (c *statusCapture) Header() http.Header { return c.header }

func (c *statusCapture) Write(b []byte) (int, error) {
	if c.code == 0 {
		c.code = http.StatusOK
	}
	return len(b), nil
}

func (c *statusCapture) WriteHeader(code int) {
	if c.code == 0 {
		c.code = code
	}
}

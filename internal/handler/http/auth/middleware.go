package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
	authservice "article-api/internal/service/auth"
)

// Authn requires a valid bearer token on every request it wraps.
// The resolved principal is stored in the request context; handlers read it
// with PrincipalFromContext. Rejected requests never reach next.
func Authn(svc Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			p, err := svc.Authenticate(r.Context(), BearerToken(r))
			RecordAuthnCheckDuration(time.Since(start).Seconds())
			if err != nil {
				status := respond.StatusFor(err)
				RecordAuthRequest("authenticate", resultFor(status))
				if status < http.StatusInternalServerError {
					logging.FromContext(r.Context()).Debug("request rejected",
						slog.String("reason", err.Error()),
						slog.String("path", r.URL.Path))
				}
				respond.Fail(w, r, err, "Failed to authenticate")
				return
			}

			logger := logging.FromContext(r.Context()).With(slog.Int64("user_id", p.UserID))
			ctx := logging.WithLogger(WithPrincipal(r.Context(), p), logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// It returns "" when the header is absent or uses another scheme.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// mustPrincipal returns the principal set by Authn. A handler mounted without
// Authn gets a 401 rather than a panic.
func mustPrincipal(w http.ResponseWriter, r *http.Request) (*authservice.Principal, bool) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		respond.Fail(w, r, authservice.ErrMissingToken, "")
		return nil, false
	}
	return p, true
}

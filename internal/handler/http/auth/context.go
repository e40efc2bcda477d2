package auth

import (
	"context"

	authservice "article-api/internal/service/auth"
)

type ctxKey string

const ctxPrincipal ctxKey = "principal"

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p *authservice.Principal) context.Context {
	return context.WithValue(ctx, ctxPrincipal, p)
}

// PrincipalFromContext returns the caller set by Authn, if any.
func PrincipalFromContext(ctx context.Context) (*authservice.Principal, bool) {
	p, ok := ctx.Value(ctxPrincipal).(*authservice.Principal)
	return p, ok && p != nil
}

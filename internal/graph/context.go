package graph

import (
	"context"

	"sellerdesk/internal/domain"
)

type ctxKey int

const claimsKey ctxKey = iota

func WithClaims(ctx context.Context, c *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFrom returns the verified caller identity, or nil for an
// unauthenticated request.
func ClaimsFrom(ctx context.Context) *domain.Claims {
	c, _ := ctx.Value(claimsKey).(*domain.Claims)
	return c
}

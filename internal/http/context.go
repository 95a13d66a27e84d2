package http

import (
	"context"

	"github.com/example/parknow/internal/application"
)

type contextKey string

const (
	identityContextKey contextKey = "identity"
	spotNameContextKey contextKey = "spot_name"
)

// ContextWithIdentity returns a derived context containing the authenticated identity.
func ContextWithIdentity(ctx context.Context, identity application.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext extracts the authenticated identity from context if available.
func IdentityFromContext(ctx context.Context) (application.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(application.Identity)
	return identity, ok
}

// ContextWithSpotName injects the spot name resolved from the request path.
func ContextWithSpotName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, spotNameContextKey, name)
}

// SpotNameFromContext extracts a spot name previously associated with the context.
func SpotNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(spotNameContextKey).(string)
	return name, ok
}

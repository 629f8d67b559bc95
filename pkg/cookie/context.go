package cookie

import (
	"context"
	"fmt"
)

type contextKey struct{}

// WithContext returns a copy of ctx carrying jar.
func WithContext(ctx context.Context, jar *RequestJar) context.Context {
	return context.WithValue(ctx, contextKey{}, jar)
}

// FromContext returns the jar stored by the plugin middleware.
func FromContext(ctx context.Context) (*RequestJar, bool) {
	if ctx == nil {
		return nil, false
	}
	jar, ok := ctx.Value(contextKey{}).(*RequestJar)
	return jar, ok && jar != nil
}

// MustFromContext is like FromContext but panics when no jar is present.
func MustFromContext(ctx context.Context) *RequestJar {
	jar, ok := FromContext(ctx)
	if !ok {
		panic(fmt.Errorf("%w: is the cookie middleware installed?", ErrNoJar))
	}
	return jar
}

// UnsignCookie verifies token with the secrets of the plugin that created the
// request jar. It returns ErrNoJar without the middleware and ErrNoSecret
// when the plugin has no secret.
func UnsignCookie(ctx context.Context, token string) (UnsignResult, error) {
	jar, ok := FromContext(ctx)
	if !ok {
		return UnsignResult{}, ErrNoJar
	}
	return jar.Unsign(token)
}

package session

import (
	"context"
	"net/http"
)

// Resolver finds the session of a request. A nil session with a nil error
// means the request has none.
type Resolver interface {
	Resolve(ctx context.Context, r *http.Request) (*Session, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, r *http.Request) (*Session, error)

func (f ResolverFunc) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	return f(ctx, r)
}

// Anonymous is a Resolver that never finds a session.
var Anonymous Resolver = ResolverFunc(func(context.Context, *http.Request) (*Session, error) {
	return nil, nil
})

var _ Resolver = (*Manager)(nil)

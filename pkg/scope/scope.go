package scope

import (
	"context"

	"pharma-search-srv/internal/model"
)

// Payload is the verified identity extracted from a token.
type Payload struct {
	UserID    string
	Username  string
	Role      string
	ExpiresAt int64
}

// Manager verifies a raw token into a Payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

type payloadCtxKey struct{}
type scopeCtxKey struct{}

// NewScope creates a new scope.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:   payload.UserID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SetPayloadToContext stores the payload in ctx.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, payload)
}

// GetPayloadFromContext returns the payload stored in ctx.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return p, ok
}

// SetScopeToContext stores the scope in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored in ctx, or an anonymous scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

package middleware

import (
	"context"

	"github.com/20225587/Tasker/app/session"
)

type ctxKey int

const identityKey ctxKey = 1

// GetIdentity returns the identity a passed guard injected, or nil on
// routes that run unguarded.
func GetIdentity(ctx context.Context) *session.Identity {
	if v := ctx.Value(identityKey); v != nil {
		if ident, ok := v.(*session.Identity); ok {
			return ident
		}
	}
	return nil
}

func withIdentity(ctx context.Context, ident *session.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

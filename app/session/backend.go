package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when a session ID resolves to nothing: never
// established, expired, or terminated.
var ErrNoSession = errors.New("session: no session")

// Backend persists identities keyed by session ID. The browser only ever
// holds the ID; the bound identity lives server-side behind one of these.
type Backend interface {
	Load(ctx context.Context, id string) (*Identity, error)
	Save(ctx context.Context, id string, ident *Identity, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

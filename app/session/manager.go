// Package session implements server-side browser sessions. The cookie
// carries only a signed, encrypted session ID; the identity it binds
// lives in a Backend for the session's lifetime.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

type Manager struct {
	backend    Backend
	codec      *securecookie.SecureCookie
	cookieName string
	ttl        time.Duration
}

type Options struct {
	CookieName string
	HashKey    []byte
	BlockKey   []byte
	TTL        time.Duration
}

func NewManager(backend Backend, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "tasker_session"
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	return &Manager{
		backend:    backend,
		codec:      securecookie.New(opts.HashKey, opts.BlockKey),
		cookieName: opts.CookieName,
		ttl:        opts.TTL,
	}
}

// sessionID decodes the request's session cookie. Empty when absent or
// when the cookie fails authentication.
func (m *Manager) sessionID(r *http.Request) string {
	c, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	var id string
	if err := m.codec.Decode(m.cookieName, c.Value, &id); err != nil {
		return ""
	}
	return id
}

// Establish binds ident to the request's session, overwriting any prior
// binding. An existing session ID is reused rather than recreated, so
// establishing twice on one browser session keeps one server record.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, ident Identity) error {
	id := m.sessionID(r)
	if id == "" {
		id = uuid.NewString()
	}
	if err := m.backend.Save(r.Context(), id, &ident, m.ttl); err != nil {
		return err
	}
	encoded, err := m.codec.Encode(m.cookieName, id)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Identity returns the identity bound to the request's session, or
// ErrNoSession when none is established.
func (m *Manager) Identity(r *http.Request) (*Identity, error) {
	id := m.sessionID(r)
	if id == "" {
		return nil, ErrNoSession
	}
	return m.backend.Load(r.Context(), id)
}

// Terminate releases the bound state and expires the cookie. The old
// session ID can never resolve again.
func (m *Manager) Terminate(w http.ResponseWriter, r *http.Request) error {
	id := m.sessionID(r)
	if id != "" {
		if err := m.backend.Delete(r.Context(), id); err != nil {
			return err
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

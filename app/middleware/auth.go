// Package middleware carries the access guards every endpoint sits
// behind. Guards run before any handler logic; a rejected request is
// terminal and the handler body never executes.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/20225587/Tasker/app/dto"
	"github.com/20225587/Tasker/app/session"
)

const (
	loginPath       = "/"
	userLandingPath = "/user"
)

type Guard struct{ Sessions *session.Manager }

func NewGuard(sessions *session.Manager) *Guard { return &Guard{Sessions: sessions} }

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Fail(message))
}

// RequireAuth gates API routes on an established session. Denials are
// generic; they never reveal whether a resource exists.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := g.Sessions.Identity(r)
		if err != nil {
			deny(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident)))
	})
}

// RequireAdmin gates API routes on an administrator session.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := g.Sessions.Identity(r)
		if err != nil {
			deny(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !ident.IsAdmin() {
			deny(w, http.StatusForbidden, "Access denied")
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident)))
	})
}

// RequireAuthPage is the page-route variant: unauthenticated visitors are
// sent to the login page instead of receiving an envelope.
func (g *Guard) RequireAuthPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := g.Sessions.Identity(r)
		if err != nil {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident)))
	})
}

// RequireAdminPage redirects authenticated non-admins to their own
// landing page and everyone else to login.
func (g *Guard) RequireAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := g.Sessions.Identity(r)
		if err != nil {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		if !ident.IsAdmin() {
			http.Redirect(w, r, userLandingPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident)))
	})
}

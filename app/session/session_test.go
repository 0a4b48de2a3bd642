package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/20225587/Tasker/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryBackend(), Options{
		CookieName: "test_session",
		HashKey:    []byte("0123456789abcdef0123456789abcdef"),
		TTL:        time.Hour,
	})
}

func establish(t *testing.T, m *Manager, r *http.Request, ident Identity) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, m.Establish(w, r, ident))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func requestWith(cookie *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	return r
}

func TestEstablishIdentityRoundTrip(t *testing.T) {
	m := newTestManager()
	ident := Identity{UserID: 7, Username: "alice", Email: "alice@example.com", Role: models.RoleUser}

	cookie := establish(t, m, requestWith(nil), ident)

	got, err := m.Identity(requestWith(cookie))
	require.NoError(t, err)
	assert.Equal(t, ident, *got)
	assert.False(t, got.IsAdmin())
}

func TestIdentityWithoutSession(t *testing.T) {
	m := newTestManager()

	_, err := m.Identity(requestWith(nil))
	assert.ErrorIs(t, err, ErrNoSession)

	// a forged cookie fails authentication and counts as no session
	forged := &http.Cookie{Name: "test_session", Value: "not-a-real-value"}
	_, err = m.Identity(requestWith(forged))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestEstablishReusesSessionAndOverwrites(t *testing.T) {
	m := newTestManager()
	first := Identity{UserID: 1, Username: "alice", Role: models.RoleUser}
	second := Identity{UserID: 2, Username: "bob", Role: models.RoleAdmin}

	cookie := establish(t, m, requestWith(nil), first)
	// establishing again on the same browser session keeps the same
	// server record and replaces the binding outright
	establish(t, m, requestWith(cookie), second)

	got, err := m.Identity(requestWith(cookie))
	require.NoError(t, err)
	assert.Equal(t, second, *got)
	assert.True(t, got.IsAdmin())
}

func TestTerminateInvalidatesSession(t *testing.T) {
	m := newTestManager()
	cookie := establish(t, m, requestWith(nil), Identity{UserID: 1, Username: "alice", Role: models.RoleUser})

	w := httptest.NewRecorder()
	require.NoError(t, m.Terminate(w, requestWith(cookie)))

	expired := w.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Negative(t, expired[0].MaxAge)

	// the old cookie can never resolve again
	_, err := m.Identity(requestWith(cookie))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestConcurrentSessionsForOneUser(t *testing.T) {
	m := newTestManager()
	ident := Identity{UserID: 7, Username: "alice", Role: models.RoleUser}

	browserA := establish(t, m, requestWith(nil), ident)
	browserB := establish(t, m, requestWith(nil), ident)

	for _, cookie := range []*http.Cookie{browserA, browserB} {
		got, err := m.Identity(requestWith(cookie))
		require.NoError(t, err)
		assert.EqualValues(t, 7, got.UserID)
	}
}

func TestMemoryBackendExpiry(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()
	ident := &Identity{UserID: 1, Username: "alice", Role: models.RoleUser}

	require.NoError(t, b.Save(ctx, "sid", ident, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := b.Load(ctx, "sid")
	assert.ErrorIs(t, err, ErrNoSession)
}

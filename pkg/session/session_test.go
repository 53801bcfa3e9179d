package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager([]byte("test-session-secret-0123456789ab"))
}

// roundTrip copies the cookies written by w onto a fresh request, the way
// a browser would on the next page load.
func roundTrip(w *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSignInAndCurrentUser(t *testing.T) {
	m := newTestManager()

	req := httptest.NewRequest("POST", "/login", nil)
	w := httptest.NewRecorder()
	require.NoError(t, m.SignIn(w, req, "alice"))

	next := roundTrip(w, "GET", "/")
	username, ok := m.CurrentUser(next)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestAnonymousHasNoUser(t *testing.T) {
	m := newTestManager()

	req := httptest.NewRequest("GET", "/", nil)
	_, ok := m.CurrentUser(req)
	assert.False(t, ok)
}

func TestSignOutClearsUser(t *testing.T) {
	m := newTestManager()

	req := httptest.NewRequest("POST", "/login", nil)
	w := httptest.NewRecorder()
	require.NoError(t, m.SignIn(w, req, "alice"))

	out := roundTrip(w, "POST", "/logout")
	w2 := httptest.NewRecorder()
	require.NoError(t, m.SignOut(w2, out))

	next := roundTrip(w2, "GET", "/")
	_, ok := m.CurrentUser(next)
	assert.False(t, ok)
}

func TestFlashesAreOneShot(t *testing.T) {
	m := newTestManager()

	req := httptest.NewRequest("POST", "/login", nil)
	w := httptest.NewRecorder()
	m.AddFlash(w, req, LevelSuccess, "Hello alice! Welcome Back!")

	next := roundTrip(w, "GET", "/")
	w2 := httptest.NewRecorder()
	flashes := m.Flashes(w2, next)
	require.Len(t, flashes, 1)
	assert.Equal(t, LevelSuccess, flashes[0].Level)
	assert.Equal(t, "Hello alice! Welcome Back!", flashes[0].Message)

	// The message must not appear a second time.
	again := roundTrip(w2, "GET", "/")
	w3 := httptest.NewRecorder()
	assert.Empty(t, m.Flashes(w3, again))
}

// Package session manages the browser session for the feedback application.
//
// The session carries exactly one piece of identity: the authenticated
// username. Absence of the username means the request is anonymous. The
// session also carries one-shot flash messages that are rendered on the
// next page and then discarded.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "feedback_session"

const usernameKey = "username"

// Flash severities rendered by the templates.
const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// Flash is a one-shot status message shown on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Manager wraps a cookie-backed session store.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a session manager keyed by secret.
func NewManager(secret []byte) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// CurrentUser returns the authenticated username, if any.
func (m *Manager) CurrentUser(r *http.Request) (string, bool) {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		return "", false
	}
	username, ok := s.Values[usernameKey].(string)
	return username, ok && username != ""
}

// SignIn records username as the authenticated user.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values[usernameKey] = username
	return s.Save(r, w)
}

// SignOut removes the authenticated user from the session. Pending
// flashes survive so the logout message is still shown.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	delete(s.Values, usernameKey)
	return s.Save(r, w)
}

// AddFlash queues a one-shot message for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	s, _ := m.store.Get(r, sessionName)
	s.AddFlash(Flash{Level: level, Message: message})
	_ = s.Save(r, w)
}

// Flashes returns and clears all pending flash messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() mutates the session; persist the removal.
	_ = s.Save(r, w)

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

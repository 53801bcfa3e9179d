package endpoints

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/accounts"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/feedback"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

// testApp wires a full server over mock stores so handler behavior can
// be exercised through the router, cookies and all.
type testApp struct {
	server        *server.Server
	sessions      *session.Manager
	accountsStore *MockAccountsStore
	feedbackStore *MockFeedbackStore
	healthStore   *MockHealthStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	sessions := session.NewManager([]byte("0123456789abcdef0123456789abcdef"))
	accountsStore := NewMockAccountsStore()
	feedbackStore := NewMockFeedbackStore()
	healthStore := NewMockHealthStore()

	s := server.NewServer(
		nil,
		sessions,
		renderer,
		accounts.NewService(accountsStore),
		feedback.NewService(feedbackStore),
		healthStore,
		"127.0.0.1",
		"0",
	)
	RegisterAll(s)

	return &testApp{
		server:        s,
		sessions:      sessions,
		accountsStore: accountsStore,
		feedbackStore: feedbackStore,
		healthStore:   healthStore,
	}
}

// do routes a request through the full router and returns the recorder.
func (a *testApp) do(req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.server.Router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest("GET", path, nil), cookies)
}

func (a *testApp) postForm(path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req, cookies)
}

// signIn produces session cookies for username without going through
// the login endpoint.
func (a *testApp) signIn(t *testing.T, username string) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	if err := a.sessions.SignIn(w, req, username); err != nil {
		t.Fatalf("failed to sign in %s: %v", username, err)
	}
	return w.Result().Cookies()
}

// mergeCookies folds response cookies into the request cookie set so a
// follow-up request sees session changes such as queued flashes.
func mergeCookies(existing []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	updated := w.Result().Cookies()
	merged := make([]*http.Cookie, 0, len(existing)+len(updated))
	for _, c := range existing {
		replaced := false
		for _, u := range updated {
			if u.Name == c.Name {
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, c)
		}
	}
	return append(merged, updated...)
}

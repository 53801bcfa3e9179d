package endpoints

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/password"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
)

func registerFormValues() url.Values {
	return url.Values{
		"first_name": {"Alice"},
		"last_name":  {"Smith"},
		"email":      {"alice@example.com"},
		"username":   {"alice"},
		"password":   {"s3cret"},
	}
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("GET renders the registration form", func(t *testing.T) {
		app := newTestApp(t)

		w := app.get("/register", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `action="/register"`)
	})

	t.Run("successful registration signs in and redirects to the user page", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("CreateAccount", mock.AnythingOfType("*model.Account")).
			Run(func(args mock.Arguments) {
				args.Get(0).(*model.Account).ID = 1
			}).
			Return(nil)

		w := app.postForm("/register", registerFormValues(), nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users/alice", w.Header().Get("Location"))

		// The new session carries the identity and the welcome flash.
		cookies := w.Result().Cookies()
		app.accountsStore.On("FindAccount", "alice").Return(&model.Account{Username: "alice"}, nil)
		app.feedbackStore.On("ListFeedbackByOwner", "alice").Return([]model.FeedbackItem{}, nil)

		next := app.get("/users/alice", cookies)
		assert.Equal(t, http.StatusOK, next.Code)
		assert.Contains(t, next.Body.String(), "New User: alice added!")
	})

	t.Run("stores a bcrypt hash, never the plaintext", func(t *testing.T) {
		app := newTestApp(t)

		var created *model.Account
		app.accountsStore.On("CreateAccount", mock.AnythingOfType("*model.Account")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*model.Account)
			}).
			Return(nil)

		app.postForm("/register", registerFormValues(), nil)

		assert.NotNil(t, created)
		assert.NotEqual(t, "s3cret", created.PasswordHash)
		assert.True(t, password.Verify("s3cret", created.PasswordHash))
	})

	t.Run("missing fields re-render the form without touching the store", func(t *testing.T) {
		app := newTestApp(t)

		form := registerFormValues()
		form.Set("email", "")
		w := app.postForm("/register", form, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "email is required")
		app.accountsStore.AssertNotCalled(t, "CreateAccount", mock.Anything)
	})

	t.Run("duplicate username reports the username field", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("CreateAccount", mock.AnythingOfType("*model.Account")).Return(store.ErrDuplicate)
		app.accountsStore.On("FindAccount", "alice").Return(&model.Account{Username: "alice"}, nil)

		w := app.postForm("/register", registerFormValues(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Username already taken")
	})

	t.Run("duplicate email reports the email field", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("CreateAccount", mock.AnythingOfType("*model.Account")).Return(store.ErrDuplicate)
		app.accountsStore.On("FindAccount", "alice").Return(nil, store.ErrNotFound)

		w := app.postForm("/register", registerFormValues(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Email already registered")
	})

	t.Run("signed-in visitor is sent back to their own page", func(t *testing.T) {
		app := newTestApp(t)
		cookies := app.signIn(t, "bob")

		w := app.get("/register", cookies)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users/bob", w.Header().Get("Location"))
		app.accountsStore.AssertNotCalled(t, "CreateAccount", mock.Anything)
	})
}

func TestLoginEndpoint(t *testing.T) {
	hash, _ := password.Hash("s3cret")
	alice := &model.Account{ID: 1, Username: "alice", PasswordHash: hash}

	t.Run("valid credentials start a session", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("FindAccount", "alice").Return(alice, nil)

		w := app.postForm("/login", url.Values{"username": {"alice"}, "password": {"s3cret"}}, nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users/alice", w.Header().Get("Location"))

		app.feedbackStore.On("ListFeedbackByOwner", "alice").Return([]model.FeedbackItem{}, nil)
		next := app.get("/users/alice", w.Result().Cookies())
		assert.Equal(t, http.StatusOK, next.Code)
		assert.Contains(t, next.Body.String(), "Hello alice! Welcome Back!")
	})

	t.Run("wrong password redirects back to login", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("FindAccount", "alice").Return(alice, nil)

		w := app.postForm("/login", url.Values{"username": {"alice"}, "password": {"nope"}}, nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		next := app.get("/login", mergeCookies(nil, w))
		assert.Contains(t, next.Body.String(), "Invalid username and password combination! Try again!")
	})

	t.Run("unknown username gets the same message as a wrong password", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("FindAccount", "ghost").Return(nil, store.ErrNotFound)

		w := app.postForm("/login", url.Values{"username": {"ghost"}, "password": {"s3cret"}}, nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("already logged in redirects to own page", func(t *testing.T) {
		app := newTestApp(t)
		cookies := app.signIn(t, "alice")

		w := app.get("/login", cookies)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users/alice", w.Header().Get("Location"))
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Run("logout ends the session", func(t *testing.T) {
		app := newTestApp(t)
		cookies := app.signIn(t, "alice")

		w := app.postForm("/logout", nil, cookies)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		// The session is anonymous afterwards; a protected page bounces.
		app.feedbackStore.On("ListFeedback").Return([]model.FeedbackItem{}, nil)
		cookies = mergeCookies(cookies, w)
		home := app.get("/", cookies)
		assert.Contains(t, home.Body.String(), "Logged Out")

		protected := app.get("/users/alice", mergeCookies(cookies, home))
		assert.Equal(t, http.StatusFound, protected.Code)
		assert.Equal(t, "/login", protected.Header().Get("Location"))
	})

	t.Run("anonymous logout redirects to login", func(t *testing.T) {
		app := newTestApp(t)

		w := app.postForm("/logout", nil, nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

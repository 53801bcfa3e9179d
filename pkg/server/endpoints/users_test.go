package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
)

func TestListUsersEndpoint(t *testing.T) {
	t.Run("lists all users without authentication", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("ListAccounts").Return([]model.Account{
			{ID: 1, FirstName: "Alice", LastName: "Smith", Username: "alice", Email: "alice@example.com"},
			{ID: 2, FirstName: "Bob", LastName: "Jones", Username: "bob", Email: "bob@example.com"},
		}, nil)

		w := app.get("/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
		assert.Contains(t, w.Body.String(), "bob")
	})
}

func TestViewUserEndpoint(t *testing.T) {
	t.Run("anonymous visitor is bounced to login", func(t *testing.T) {
		app := newTestApp(t)

		w := app.get("/users/alice", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		app.accountsStore.AssertNotCalled(t, "FindAccount", mock.Anything)
	})

	t.Run("shows the user's feedback with owner controls", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("FindAccount", "alice").Return(&model.Account{
			ID: 1, FirstName: "Alice", LastName: "Smith", Username: "alice", Email: "alice@example.com",
		}, nil)
		app.feedbackStore.On("ListFeedbackByOwner", "alice").Return([]model.FeedbackItem{
			{ID: 7, Title: "Great service", Content: "Loved it", OwnerUsername: "alice"},
		}, nil)

		w := app.get("/users/alice", app.signIn(t, "alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Great service")
		assert.Contains(t, body, "/feedback/7/update")
		assert.Contains(t, body, "/users/alice/delete")
	})

	t.Run("hides owner controls from other users", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("FindAccount", "alice").Return(&model.Account{
			ID: 1, FirstName: "Alice", LastName: "Smith", Username: "alice", Email: "alice@example.com",
		}, nil)
		app.feedbackStore.On("ListFeedbackByOwner", "alice").Return([]model.FeedbackItem{
			{ID: 7, Title: "Great service", Content: "Loved it", OwnerUsername: "alice"},
		}, nil)

		w := app.get("/users/alice", app.signIn(t, "bob"))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Great service")
		assert.NotContains(t, body, "/feedback/7/update")
		assert.NotContains(t, body, "/users/alice/delete")
	})

	t.Run("unknown user redirects home", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("FindAccount", "ghost").Return(nil, store.ErrNotFound)

		w := app.get("/users/ghost", app.signIn(t, "alice"))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestDeleteUserEndpoint(t *testing.T) {
	t.Run("owner can delete their account", func(t *testing.T) {
		app := newTestApp(t)
		app.accountsStore.On("DeleteAccount", "alice").Return(nil)
		app.feedbackStore.On("ListFeedback").Return([]model.FeedbackItem{}, nil)

		cookies := app.signIn(t, "alice")
		w := app.postForm("/users/alice/delete", nil, cookies)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		app.accountsStore.AssertCalled(t, "DeleteAccount", "alice")

		// Session is gone and the confirmation flash shows once.
		home := app.get("/", mergeCookies(cookies, w))
		assert.Contains(t, home.Body.String(), "alice deleted!")
		assert.NotContains(t, home.Body.String(), `href="/users/alice"`)
	})

	t.Run("cannot delete another user's account", func(t *testing.T) {
		app := newTestApp(t)

		w := app.postForm("/users/alice/delete", nil, app.signIn(t, "bob"))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		app.accountsStore.AssertNotCalled(t, "DeleteAccount", mock.Anything)
	})

	t.Run("anonymous delete is bounced to login", func(t *testing.T) {
		app := newTestApp(t)

		w := app.postForm("/users/alice/delete", nil, nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		app.accountsStore.AssertNotCalled(t, "DeleteAccount", mock.Anything)
	})
}

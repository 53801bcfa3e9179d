package endpoints

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/accounts"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/audit"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/feedback"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

// usersPageData is the payload for the user listing template
type usersPageData struct {
	Accounts []model.Account
}

// userPageData is the payload for the single user template
type userPageData struct {
	Account   *model.Account
	Feedbacks []model.FeedbackItem
}

// RegisterUsersEndpoints registers the user listing and user pages
func RegisterUsersEndpoints(s *server.Server) {
	s.Router.HandleFunc("/users", handleListUsers(s.Sessions, s.Renderer, s.Accounts)).Methods("GET")
	s.Router.HandleFunc("/users/{username}", handleViewUser(s.Sessions, s.Renderer, s.Accounts, s.Feedback)).Methods("GET")
	s.Router.HandleFunc("/users/{username}/delete", handleDeleteUser(s.Sessions, s.Renderer, s.Accounts, s.Audit)).Methods("POST")
}

// handleListUsers lists all accounts. No authentication required.
func handleListUsers(sessions *session.Manager, renderer *render.Renderer, accountsService *accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := accountsService.List()
		if err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}
		renderer.HTML(w, http.StatusOK, "users", newPage(w, r, sessions, usersPageData{Accounts: all}))
	}
}

// handleViewUser shows a user's page with their feedback. Requires an
// authenticated session but not ownership.
func handleViewUser(sessions *session.Manager, renderer *render.Renderer, accountsService *accounts.Service, feedbackService *feedback.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r, sessions); !ok {
			return
		}

		username := mux.Vars(r)["username"]
		account, err := accountsService.Find(username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				flashAndRedirect(w, r, sessions, session.LevelDanger, "No such user!", "/")
				return
			}
			serverError(w, r, sessions, renderer, err)
			return
		}

		items, err := feedbackService.ListByOwner(username)
		if err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}

		renderer.HTML(w, http.StatusOK, "user", newPage(w, r, sessions, userPageData{
			Account:   account,
			Feedbacks: items,
		}))
	}
}

// handleDeleteUser deletes an account and ends the session. Only the
// account owner may delete it. The database cascades the delete to the
// account's feedback items.
func handleDeleteUser(sessions *session.Manager, renderer *render.Renderer, accountsService *accounts.Service, auditor *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionUser, ok := requireUser(w, r, sessions)
		if !ok {
			return
		}

		username := mux.Vars(r)["username"]
		if sessionUser != username {
			flashAndRedirect(w, r, sessions, session.LevelWarning,
				"Unauthorized access! You can only delete your own account!", "/")
			return
		}

		if err := accountsService.Delete(username); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				flashAndRedirect(w, r, sessions, session.LevelDanger, "No such user!", "/")
				return
			}
			serverError(w, r, sessions, renderer, err)
			return
		}

		_ = sessions.SignOut(w, r)
		auditor.Log(audit.AccountEvent{Username: username, ClientIP: clientIP(r), Action: "deleted"})
		flashAndRedirect(w, r, sessions, session.LevelSuccess,
			fmt.Sprintf("%s deleted!", username), "/")
	}
}

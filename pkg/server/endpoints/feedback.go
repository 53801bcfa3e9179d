package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/audit"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/feedback"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/forms"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

// feedbackPageData is the payload for the add/update form template
type feedbackPageData struct {
	Form    forms.FeedbackForm
	Errors  forms.Errors
	Action  string
	Heading string
}

// RegisterFeedbackEndpoints registers the feedback add, update and
// delete pages
func RegisterFeedbackEndpoints(s *server.Server) {
	s.Router.HandleFunc("/users/{username}/feedback/add", handleAddFeedback(s.Sessions, s.Renderer, s.Feedback, s.Audit)).Methods("GET", "POST")
	s.Router.HandleFunc("/feedback/{id:[0-9]+}/update", handleUpdateFeedback(s.Sessions, s.Renderer, s.Feedback, s.Audit)).Methods("GET", "POST")
	s.Router.HandleFunc("/feedback/{id:[0-9]+}/delete", handleDeleteFeedback(s.Sessions, s.Renderer, s.Feedback, s.Audit)).Methods("POST")
}

// handleAddFeedback renders the add form on GET and creates the item on
// POST. Only the owner of the page may add to it.
func handleAddFeedback(sessions *session.Manager, renderer *render.Renderer, feedbackService *feedback.Service, auditor *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionUser, ok := requireUser(w, r, sessions)
		if !ok {
			return
		}

		username := mux.Vars(r)["username"]
		if sessionUser != username {
			flashAndRedirect(w, r, sessions, session.LevelWarning,
				"Unauthorized access! Only logged in users can add feedback to their page!", "/")
			return
		}

		action := "/users/" + username + "/feedback/add"
		if r.Method == http.MethodGet {
			renderer.HTML(w, http.StatusOK, "feedback_form", newPage(w, r, sessions, feedbackPageData{
				Action:  action,
				Heading: "Add Feedback",
			}))
			return
		}

		form := forms.DecodeFeedback(r)
		if errs := form.Validate(); len(errs) > 0 {
			renderer.HTML(w, http.StatusOK, "feedback_form", newPage(w, r, sessions, feedbackPageData{
				Form:    form,
				Errors:  errs,
				Action:  action,
				Heading: "Add Feedback",
			}))
			return
		}

		item, err := feedbackService.Create(username, form.Title, form.Content)
		if err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}
		auditor.Log(audit.FeedbackEvent{FeedbackID: item.ID, Owner: username, ClientIP: clientIP(r), Action: "created"})
		flashAndRedirect(w, r, sessions, session.LevelSuccess, "Feedback Added!", "/")
	}
}

// fetchOwnedFeedback loads the feedback item from the id route variable
// and enforces that sessionUser owns it. On failure it has already
// written a redirect and returns nil.
func fetchOwnedFeedback(w http.ResponseWriter, r *http.Request, sessions *session.Manager, renderer *render.Renderer, feedbackService *feedback.Service, sessionUser, unauthorized string) *model.FeedbackItem {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	item, err := feedbackService.Get(id)
	if err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			flashAndRedirect(w, r, sessions, session.LevelDanger, "Feedback not found!", "/")
			return nil
		}
		serverError(w, r, sessions, renderer, err)
		return nil
	}

	if item.OwnerUsername != sessionUser {
		flashAndRedirect(w, r, sessions, session.LevelWarning, unauthorized, "/")
		return nil
	}
	return item
}

// handleUpdateFeedback renders the pre-filled form on GET and applies
// the edit on POST. Only the owner may update an item.
func handleUpdateFeedback(sessions *session.Manager, renderer *render.Renderer, feedbackService *feedback.Service, auditor *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionUser, ok := requireUser(w, r, sessions)
		if !ok {
			return
		}

		item := fetchOwnedFeedback(w, r, sessions, renderer, feedbackService, sessionUser,
			"Unauthorized access! Only logged in users can update feedbacks from their page!")
		if item == nil {
			return
		}

		action := "/feedback/" + strconv.FormatInt(item.ID, 10) + "/update"
		if r.Method == http.MethodGet {
			renderer.HTML(w, http.StatusOK, "feedback_form", newPage(w, r, sessions, feedbackPageData{
				Form:    forms.FeedbackForm{Title: item.Title, Content: item.Content},
				Action:  action,
				Heading: "Update Feedback",
			}))
			return
		}

		form := forms.DecodeFeedback(r)
		if errs := form.Validate(); len(errs) > 0 {
			renderer.HTML(w, http.StatusOK, "feedback_form", newPage(w, r, sessions, feedbackPageData{
				Form:    form,
				Errors:  errs,
				Action:  action,
				Heading: "Update Feedback",
			}))
			return
		}

		if _, err := feedbackService.Update(item.ID, form.Title, form.Content); err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}
		auditor.Log(audit.FeedbackEvent{FeedbackID: item.ID, Owner: item.OwnerUsername, ClientIP: clientIP(r), Action: "updated"})
		flashAndRedirect(w, r, sessions, session.LevelSuccess, "Feedback Updated!",
			"/users/"+item.OwnerUsername)
	}
}

// handleDeleteFeedback removes an item. Only the owner may delete it.
func handleDeleteFeedback(sessions *session.Manager, renderer *render.Renderer, feedbackService *feedback.Service, auditor *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionUser, ok := requireUser(w, r, sessions)
		if !ok {
			return
		}

		item := fetchOwnedFeedback(w, r, sessions, renderer, feedbackService, sessionUser,
			"Unauthorized access! Only logged in users can remove feedbacks from their page!")
		if item == nil {
			return
		}

		if err := feedbackService.Delete(item.ID); err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}
		auditor.Log(audit.FeedbackEvent{FeedbackID: item.ID, Owner: item.OwnerUsername, ClientIP: clientIP(r), Action: "deleted"})
		flashAndRedirect(w, r, sessions, session.LevelSuccess, "Feedback Deleted!",
			"/users/"+item.OwnerUsername)
	}
}

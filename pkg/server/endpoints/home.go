package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/feedback"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

// FeedbackResponse represents a feedback item in JSON responses
type FeedbackResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// rootPageData is the payload for the landing page template
type rootPageData struct {
	Feedbacks []model.FeedbackItem
}

// RegisterHomeEndpoints registers the landing page
func RegisterHomeEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleRoot(s.Sessions, s.Renderer, s.Feedback)).Methods("GET")
}

// handleRoot lists all feedback items in insertion order. Returns JSON
// when the client asks for it, HTML otherwise.
func handleRoot(sessions *session.Manager, renderer *render.Renderer, feedbackService *feedback.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := feedbackService.ListAll()
		if err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}

		accept := r.Header.Get("Accept")
		if r.URL.Query().Get("format") == "json" || strings.Contains(accept, "application/json") {
			response := make([]FeedbackResponse, 0, len(items))
			for _, item := range items {
				response = append(response, FeedbackResponse{
					ID:      item.ID,
					Title:   item.Title,
					Content: item.Content,
					Owner:   item.OwnerUsername,
				})
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(response)
			return
		}

		renderer.HTML(w, http.StatusOK, "root", newPage(w, r, sessions, rootPageData{Feedbacks: items}))
	}
}

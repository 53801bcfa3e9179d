package endpoints

import (
	"net"
	"net/http"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/logger"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

const unauthorizedMessage = "Unauthorized access! Please login first!"

// requireUser returns the session username, or redirects to the login
// page with a warning flash. Callers must return when ok is false.
func requireUser(w http.ResponseWriter, r *http.Request, sessions *session.Manager) (username string, ok bool) {
	username, ok = sessions.CurrentUser(r)
	if !ok {
		sessions.AddFlash(w, r, session.LevelWarning, unauthorizedMessage)
		http.Redirect(w, r, "/login", http.StatusFound)
		return "", false
	}
	return username, true
}

// flashAndRedirect queues a one-shot message and redirects to target.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, sessions *session.Manager, level, message, target string) {
	sessions.AddFlash(w, r, level, message)
	http.Redirect(w, r, target, http.StatusFound)
}

// newPage assembles the template data common to every page, consuming
// any pending flashes.
func newPage(w http.ResponseWriter, r *http.Request, sessions *session.Manager, data any) render.Page {
	username, _ := sessions.CurrentUser(r)
	return render.Page{
		CurrentUser: username,
		Flashes:     sessions.Flashes(w, r),
		Data:        data,
	}
}

// clientIP returns the request's remote address without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// logServerError records a failed request
func logServerError(r *http.Request, err error) {
	log := logger.Get()
	log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
}

// serverError logs err and renders the generic 500 page. Internals are
// never leaked to the client.
func serverError(w http.ResponseWriter, r *http.Request, sessions *session.Manager, renderer *render.Renderer, err error) {
	logServerError(r, err)
	renderer.HTML(w, http.StatusInternalServerError, "error", newPage(w, r, sessions, nil))
}

package endpoints

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/accounts"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/audit"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/forms"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

// registerPageData is the payload for the registration form template
type registerPageData struct {
	Form   forms.RegisterForm
	Errors forms.Errors
}

// loginPageData is the payload for the login form template
type loginPageData struct {
	Form   forms.LoginForm
	Errors forms.Errors
}

// RegisterAuthEndpoints registers registration, login and logout
func RegisterAuthEndpoints(s *server.Server) {
	s.Router.HandleFunc("/register", handleRegister(s.Sessions, s.Renderer, s.Accounts, s.Audit)).Methods("GET", "POST")
	s.Router.HandleFunc("/login", handleLogin(s.Sessions, s.Renderer, s.Accounts, s.Audit)).Methods("GET", "POST")
	s.Router.HandleFunc("/logout", handleLogout(s.Sessions)).Methods("POST")
}

// handleRegister renders the registration form on GET and creates the
// account on POST. A signed-in visitor is sent back to their own page.
func handleRegister(sessions *session.Manager, renderer *render.Renderer, accountsService *accounts.Service, auditor *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if username, ok := sessions.CurrentUser(r); ok {
			flashAndRedirect(w, r, sessions, session.LevelWarning,
				fmt.Sprintf("%s is logged in! Please logout to register new user!", username),
				"/users/"+username)
			return
		}

		if r.Method == http.MethodGet {
			renderer.HTML(w, http.StatusOK, "register_form", newPage(w, r, sessions, registerPageData{}))
			return
		}

		form := forms.DecodeRegister(r)
		if errs := form.Validate(); len(errs) > 0 {
			renderer.HTML(w, http.StatusOK, "register_form", newPage(w, r, sessions, registerPageData{Form: form, Errors: errs}))
			return
		}

		account, err := accountsService.Register(form.FirstName, form.LastName, form.Email, form.Username, form.Password)
		if err != nil {
			errs := forms.Errors{}
			switch {
			case errors.Is(err, accounts.ErrUsernameTaken):
				errs["username"] = "Username already taken"
			case errors.Is(err, accounts.ErrEmailTaken):
				errs["email"] = "Email already registered"
			default:
				serverError(w, r, sessions, renderer, err)
				return
			}
			renderer.HTML(w, http.StatusOK, "register_form", newPage(w, r, sessions, registerPageData{Form: form, Errors: errs}))
			return
		}

		if err := sessions.SignIn(w, r, account.Username); err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}
		auditor.Log(audit.AccountEvent{Username: account.Username, ClientIP: clientIP(r), Action: "created"})
		flashAndRedirect(w, r, sessions, session.LevelSuccess,
			fmt.Sprintf("New User: %s added!", account.Username),
			"/users/"+account.Username)
	}
}

// handleLogin verifies credentials on POST and starts the session. Bad
// credentials redirect back to the login page; they are never an error.
func handleLogin(sessions *session.Manager, renderer *render.Renderer, accountsService *accounts.Service, auditor *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if username, ok := sessions.CurrentUser(r); ok {
			flashAndRedirect(w, r, sessions, session.LevelWarning,
				fmt.Sprintf("%s is already logged in!", username),
				"/users/"+username)
			return
		}

		if r.Method == http.MethodGet {
			renderer.HTML(w, http.StatusOK, "login_form", newPage(w, r, sessions, loginPageData{}))
			return
		}

		form := forms.DecodeLogin(r)
		if errs := form.Validate(); len(errs) > 0 {
			renderer.HTML(w, http.StatusOK, "login_form", newPage(w, r, sessions, loginPageData{Form: form, Errors: errs}))
			return
		}

		account, err := accountsService.Authenticate(form.Username, form.Password)
		if err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}
		if account == nil {
			auditor.Log(audit.LoginEvent{Username: form.Username, ClientIP: clientIP(r), Success: false})
			flashAndRedirect(w, r, sessions, session.LevelDanger,
				"Invalid username and password combination! Try again!", "/login")
			return
		}

		if err := sessions.SignIn(w, r, account.Username); err != nil {
			serverError(w, r, sessions, renderer, err)
			return
		}
		auditor.Log(audit.LoginEvent{Username: account.Username, ClientIP: clientIP(r), Success: true})
		flashAndRedirect(w, r, sessions, session.LevelSuccess,
			fmt.Sprintf("Hello %s! Welcome Back!", account.Username),
			"/users/"+account.Username)
	}
}

// handleLogout ends the session
func handleLogout(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r, sessions); !ok {
			return
		}

		_ = sessions.SignOut(w, r)
		flashAndRedirect(w, r, sessions, session.LevelSuccess, "Logged Out", "/")
	}
}

package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/accounts"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/audit"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/feedback"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

type Server struct {
	Router      *mux.Router
	DB          *gorm.DB
	Sessions    *session.Manager
	Renderer    *render.Renderer
	Accounts    *accounts.Service
	Feedback    *feedback.Service
	HealthStore store.HealthStore
	Audit       *audit.Logger
	srv         *http.Server
}

func NewServer(
	db *gorm.DB,
	sessions *session.Manager,
	renderer *render.Renderer,
	accountsService *accounts.Service,
	feedbackService *feedback.Service,
	healthStore store.HealthStore,
	host string,
	port string,
) *Server {

	router := mux.NewRouter()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, handlers.RecoveryHandler()(router)),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:      router,
		DB:          db,
		Sessions:    sessions,
		Renderer:    renderer,
		Accounts:    accountsService,
		Feedback:    feedbackService,
		HealthStore: healthStore,
		Audit:       audit.DefaultLogger,
		srv:         srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}

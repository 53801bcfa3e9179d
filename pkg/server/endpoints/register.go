package endpoints

import (
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
)

// RegisterAll registers all endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterHomeEndpoints(srv)
	RegisterAuthEndpoints(srv)
	RegisterUsersEndpoints(srv)
	RegisterFeedbackEndpoints(srv)
	RegisterHealthEndpoints(srv)

	// Static files
	RegisterStaticFiles(srv)
}

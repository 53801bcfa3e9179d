package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/store"
)

// HealthResponse represents the response from /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterHealthEndpoints registers the health endpoint
func RegisterHealthEndpoints(s *server.Server) {
	s.Router.HandleFunc("/health", handleHealth(s.HealthStore)).Methods("GET")
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Database: "ok"}
		status := http.StatusOK
		if err := healthStore.CheckConnectivity(); err != nil {
			logServerError(r, err)
			resp = HealthResponse{Status: "degraded", Database: "unreachable"}
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(resp)
	}
}

package endpoints

import (
	"net/http"
	"os"
	"time"

	"rolegate/pkg/config"
	"rolegate/pkg/server"
)

// StatusResponse represents the response from / and /health
type StatusResponse struct {
	Service   string   `json:"service"`
	Status    string   `json:"status"`
	Version   string   `json:"version"`
	ClientID  string   `json:"clientId"`
	Guilds    []string `json:"guilds"`
	Timestamp string   `json:"timestamp"`
}

// RegisterStatusEndpoints registers the status and health endpoints
func RegisterStatusEndpoints(s *server.Server) {
	// GET / - Status page (no auth required)
	s.Router.HandleFunc("/", handleStatus(s.Config)).Methods("GET")

	// GET /health - Liveness probe (no auth required)
	s.Router.HandleFunc("/health", handleStatus(s.Config)).Methods("GET")
}

func handleStatus(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("ROLEGATE_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Service:   "rolegate",
			Status:    "ok",
			Version:   version,
			ClientID:  cfg.ClientID,
			Guilds:    cfg.RuleKeys(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

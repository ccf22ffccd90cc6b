package endpoints

import (
	"net/http"

	"rolegate/pkg/config"
	"rolegate/pkg/server"
)

// APIResponse represents the response from /api
type APIResponse struct {
	Service   string            `json:"service"`
	Endpoints map[string]string `json:"endpoints"`
}

// GuildsResponse represents the response from /guilds
type GuildsResponse struct {
	Guilds  map[string]config.GuildRoleRule `json:"guilds"`
	Default string                          `json:"default,omitempty"`
}

// RegisterDocsEndpoints registers the API discovery endpoints
func RegisterDocsEndpoints(s *server.Server) {
	cfg := s.Config

	// GET /api - Route listing (no auth required)
	s.Router.HandleFunc("/api", handleAPIDocs()).Methods("GET")

	// GET /guilds - Configured guild rules (no auth required)
	s.Router.HandleFunc("/guilds", handleGuilds(cfg)).Methods("GET")
}

func handleAPIDocs() http.HandlerFunc {
	endpoints := map[string]string{
		"GET /":                        "Service status",
		"GET /health":                  "Liveness probe",
		"GET /api":                     "This listing",
		"GET /login":                   "Start the Discord OAuth2 flow, optionally with ?redirect=",
		"GET /callback":                "OAuth2 redirect target",
		"GET /callback-clean":          "OAuth2 redirect target with a uniform 200 response",
		"POST /check-role":             "Check the default guild role for an access token",
		"POST /check-role/{guild}":     "Check a named guild rule for an access token",
		"GET /nft-access":              "Minting gate answer for an access token",
		"GET /guilds":                  "List configured guild rules",
		"GET /dashboard":               "Session dashboard (requires login)",
		"GET /logout":                  "Clear the session",
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, APIResponse{
			Service:   "rolegate",
			Endpoints: endpoints,
		})
	}
}

func handleGuilds(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guilds := make(map[string]config.GuildRoleRule, len(cfg.Rules))
		for _, key := range cfg.RuleKeys() {
			rule, _ := cfg.Rule(key)
			guilds[key] = rule
		}

		respondWithJSON(w, http.StatusOK, GuildsResponse{
			Guilds:  guilds,
			Default: cfg.GateRule,
		})
	}
}

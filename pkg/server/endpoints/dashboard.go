package endpoints

import (
	"net/http"

	"rolegate/pkg/rolecheck"
	"rolegate/pkg/server"
	"rolegate/pkg/server/middleware"
	"rolegate/pkg/session"
)

// DashboardResponse represents the response from /dashboard
type DashboardResponse struct {
	Username string                          `json:"username"`
	Guilds   map[string]rolecheck.RuleResult `json:"guilds"`
}

// RegisterDashboardEndpoints registers the session-backed endpoints.
// They are only mounted when a session secret is configured.
func RegisterDashboardEndpoints(s *server.Server) {
	if s.Sessions == nil {
		return
	}

	authenticator := middleware.NewSessionAuthenticator(s.Sessions)

	// GET /dashboard - Role overview for the logged-in user
	s.Router.Handle(
		"/dashboard",
		authenticator.Middleware(handleDashboard(s)),
	).Methods("GET")

	// GET /logout - Clear the session (no auth required)
	s.Router.HandleFunc("/logout", handleLogout()).Methods("GET")
}

func handleDashboard(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromRequest(r)
		if claims == nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		results := s.Checker.CheckAll(r.Context(), claims.AccessToken, s.Config.Rules)

		respondWithJSON(w, http.StatusOK, DashboardResponse{
			Username: claims.Username,
			Guilds:   results,
		})
	}
}

func handleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, session.ClearCookie())
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

package endpoints

import (
	"net/http"
	"net/url"

	"rolegate/pkg/server"
)

// RegisterLoginEndpoint registers the OAuth2 entry point
func RegisterLoginEndpoint(s *server.Server) {
	// GET /login - Redirect to the Discord consent screen (no auth required)
	s.Router.HandleFunc("/login", handleLogin(s)).Methods("GET")
}

// handleLogin sends the browser to Discord. A ?redirect= parameter is
// folded into the redirect_uri so the callback can bounce the gate
// answer back to the caller's frontend.
func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirectURI := ""
		if redirect := r.URL.Query().Get("redirect"); redirect != "" {
			redirectURI = s.Config.RedirectURI + "?redirect=" + url.QueryEscape(redirect)
		}

		http.Redirect(w, r, s.Exchanger.AuthCodeURL(redirectURI), http.StatusFound)
	}
}

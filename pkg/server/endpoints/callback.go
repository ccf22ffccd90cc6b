package endpoints

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"rolegate/pkg/audit"
	"rolegate/pkg/discord"
	"rolegate/pkg/rolecheck"
	"rolegate/pkg/server"
	"rolegate/pkg/session"
)

// RegisterCallbackEndpoints registers the OAuth2 redirect targets
func RegisterCallbackEndpoints(s *server.Server) {
	// GET /callback - Primary redirect target (no auth required)
	s.Router.HandleFunc("/callback", handleCallback(s)).Methods("GET")

	// GET /callback-clean - Uniform 200 variant for frontends that
	// cannot handle error statuses (no auth required)
	s.Router.HandleFunc("/callback-clean", handleCallbackClean(s)).Methods("GET")
}

func exchangeCode(s *server.Server, r *http.Request) (*discord.Token, error) {
	code := r.URL.Query().Get("code")

	token, err := s.Exchanger.Exchange(r.Context(), code)

	event := audit.TokenExchangeEvent{ClientIP: clientIP(r), Success: err == nil}
	if err != nil {
		event.ErrorMessage = discord.AsError(err).Message
	}
	audit.Log(event)

	return token, err
}

func gate(s *server.Server, r *http.Request, accessToken string) rolecheck.GateResult {
	rule, ok := s.Config.GateGuildRule()
	if !ok {
		return rolecheck.GateResult{Message: rolecheck.MessageUnverified}
	}

	result := s.Checker.Gate(r.Context(), accessToken, rule)

	audit.Log(audit.RoleCheckEvent{
		ClientIP: clientIP(r),
		GuildID:  rule.GuildID,
		RoleID:   rule.RoleID,
		HasRole:  result.CanMint,
	})

	return result
}

// bounce hands a gate answer back to a frontend via query params
func bounce(w http.ResponseWriter, r *http.Request, redirect string, result rolecheck.GateResult) {
	sep := "?"
	if strings.Contains(redirect, "?") {
		sep = "&"
	}
	target := redirect + sep +
		"canMint=" + strconv.FormatBool(result.CanMint) +
		"&message=" + url.QueryEscape(result.Message)

	http.Redirect(w, r, target, http.StatusFound)
}

func handleCallback(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirect := r.URL.Query().Get("redirect")

		token, err := exchangeCode(s, r)
		if err != nil {
			if redirect != "" {
				bounce(w, r, redirect, rolecheck.GateResult{Message: discord.AsError(err).Message})
				return
			}
			respondWithDiscordError(w, err)
			return
		}

		if redirect != "" {
			bounce(w, r, redirect, gate(s, r, token.AccessToken))
			return
		}

		// Browser flow: establish a session and land on the dashboard
		if s.Sessions != nil {
			username := ""
			if user, err := s.Profiles.Me(r.Context(), token.AccessToken); err == nil && user != nil {
				username = user.Username
			}

			sessionToken, err := s.Sessions.Issue(username, token.AccessToken)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			http.SetCookie(w, session.Cookie(sessionToken))
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}

		// API flow: gate answer plus the token for reuse
		result := gate(s, r, token.AccessToken)
		result.AccessToken = token.AccessToken
		respondWithJSON(w, http.StatusOK, result)
	}
}

// handleCallbackClean never surfaces an error status. Every outcome,
// including a failed exchange, is a 200 with the canMint contract.
func handleCallbackClean(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := exchangeCode(s, r)
		if err != nil {
			message := rolecheck.MessageUnverified
			if discord.AsError(err).Code == discord.CodeMissingCode {
				message = discord.ErrMissingCode.Message
			}
			respondWithJSON(w, http.StatusOK, rolecheck.GateResult{Message: message})
			return
		}

		result := gate(s, r, token.AccessToken)
		if result.CanMint {
			result.AccessToken = token.AccessToken
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}

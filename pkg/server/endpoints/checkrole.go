package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rolegate/pkg/audit"
	"rolegate/pkg/config"
	"rolegate/pkg/discord"
	"rolegate/pkg/rolecheck"
	"rolegate/pkg/server"
)

// CheckRoleRequest is the body of an explicit role check
type CheckRoleRequest struct {
	AccessToken string `json:"accessToken"`
}

// RegisterCheckRoleEndpoints registers the explicit role check endpoints
func RegisterCheckRoleEndpoints(s *server.Server) {
	// POST /check-role - Check the default gate rule (no auth required)
	s.Router.HandleFunc("/check-role", handleCheckRole(s)).Methods("POST")

	// POST /check-role/{guild} - Check a named rule (no auth required)
	s.Router.HandleFunc("/check-role/{guild}", handleCheckGuildRole(s)).Methods("POST")
}

func checkRole(s *server.Server, w http.ResponseWriter, r *http.Request, rule config.GuildRoleRule) {
	var body CheckRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.AccessToken == "" {
		respondWithDiscordError(w, discord.ErrMissingAccessToken)
		return
	}

	hasRole, err := s.Checker.CheckRule(r.Context(), body.AccessToken, rule)

	event := audit.RoleCheckEvent{
		ClientIP: clientIP(r),
		GuildID:  rule.GuildID,
		RoleID:   rule.RoleID,
		HasRole:  hasRole,
	}
	if err != nil {
		event.ErrorMessage = discord.AsError(err).Message
	}
	audit.Log(event)

	result := rolecheck.Result{
		GuildID: rule.GuildID,
		RoleID:  rule.RoleID,
	}
	if err != nil {
		e := discord.AsError(err)
		result.Error = e.Message
		respondWithJSON(w, e.HTTPStatus(), result)
		return
	}

	result.HasRole = hasRole
	result.Success = true
	respondWithJSON(w, http.StatusOK, result)
}

func handleCheckRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rule, ok := s.Config.GateGuildRule()
		if !ok {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		checkRole(s, w, r, rule)
	}
}

func handleCheckGuildRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["guild"]

		rule, ok := s.Config.Rule(key)
		if !ok {
			e := discord.UnknownGuildRuleError(key, s.Config.RuleKeys())
			respondWithError(w, e.HTTPStatus(), e.Message)
			return
		}
		checkRole(s, w, r, rule)
	}
}

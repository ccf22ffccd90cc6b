package endpoints

import (
	"net/http"

	"rolegate/pkg/discord"
	"rolegate/pkg/rolecheck"
	"rolegate/pkg/server"
)

// RegisterNFTAccessEndpoint registers the minting gate endpoint
func RegisterNFTAccessEndpoint(s *server.Server) {
	// GET /nft-access - Gate answer for an already-obtained token
	// (no auth required)
	s.Router.HandleFunc("/nft-access", handleNFTAccess(s)).Methods("GET")
}

// handleNFTAccess answers the gate question for a token passed by
// Bearer header or accessToken query parameter. Like the clean
// callback it always responds 200 with the canMint contract.
func handleNFTAccess(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := bearerToken(r)
		if accessToken == "" {
			respondWithJSON(w, http.StatusOK, rolecheck.GateResult{
				Message: discord.ErrMissingAccessToken.Message,
			})
			return
		}

		respondWithJSON(w, http.StatusOK, gate(s, r, accessToken))
	}
}

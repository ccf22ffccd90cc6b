package endpoints

import (
	"net/http"

	"rolegate/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterDocsEndpoints(srv)
	RegisterLoginEndpoint(srv)
	RegisterCallbackEndpoints(srv)
	RegisterCheckRoleEndpoints(srv)
	RegisterNFTAccessEndpoint(srv)
	RegisterDashboardEndpoints(srv)

	srv.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Endpoint not found")
	})
}

package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"rolegate/pkg/audit"
	"rolegate/pkg/config"
	"rolegate/pkg/discord"
	"rolegate/pkg/rolecheck"
	"rolegate/pkg/server/middleware"
	"rolegate/pkg/session"
)

// TokenExchanger swaps an OAuth2 authorization code for a Discord token
type TokenExchanger interface {
	AuthCodeURL(redirectURI string) string
	Exchange(ctx context.Context, code string) (*discord.Token, error)
}

// ProfileFetcher looks up the profile of the token's owner
type ProfileFetcher interface {
	Me(ctx context.Context, accessToken string) (*discord.User, error)
}

type Server struct {
	Config    *config.Config
	Exchanger TokenExchanger
	Checker   *rolecheck.Checker
	Profiles  ProfileFetcher
	Sessions  *session.Codec
	Audit     *audit.Logger
	Router    *mux.Router
	srv       *http.Server
}

func NewServer(
	cfg *config.Config,
	exchanger TokenExchanger,
	checker *rolecheck.Checker,
	profiles ProfileFetcher,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()

	var handler http.Handler = router
	handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(handler)
	handler = middleware.Recovery(handler)
	handler = handlers.LoggingHandler(os.Stdout, handler)

	srv := &http.Server{
		Handler: handler,
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	var sessions *session.Codec
	if cfg.SessionsEnabled() {
		sessions = session.NewCodec(cfg.SessionSecret)
	}

	return &Server{
		Config:    cfg,
		Exchanger: exchanger,
		Checker:   checker,
		Profiles:  profiles,
		Sessions:  sessions,
		Audit:     audit.DefaultLogger,
		Router:    router,
		srv:       srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}

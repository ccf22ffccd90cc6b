package endpoints

import (
	"rolegate/pkg/config"
	"rolegate/pkg/rolecheck"
	"rolegate/pkg/server"
)

// NewTestServer creates a server instance with stubbed Discord upstreams
func NewTestServer(
	cfg *config.Config,
	exchanger server.TokenExchanger,
	fetcher rolecheck.MemberFetcher,
	profiles server.ProfileFetcher,
) *server.Server {
	return server.NewServer(cfg, exchanger, rolecheck.NewChecker(fetcher), profiles, "127.0.0.1", "0")
}

// NewTestConfig builds a config with a single "nads" gate rule
func NewTestConfig() *config.Config {
	return &config.Config{
		ClientID:      "client-id",
		ClientSecret:  "client-secret",
		RedirectURI:   "http://localhost:3000/callback",
		Scopes:        config.DefaultScopes,
		DiscordAPIURL: config.DefaultDiscordAPIURL,
		GateRule:      "nads",
		Rules: map[string]config.GuildRoleRule{
			"nads": {
				Key:       "nads",
				GuildID:   "111222333",
				GuildName: "NADS Community",
				RoleID:    "444555666",
				RoleName:  "NADS role",
			},
			"mons": {
				Key:       "mons",
				GuildID:   "777888999",
				GuildName: "Mons",
				RoleID:    "101010",
				RoleName:  "Mon holder",
			},
		},
	}
}

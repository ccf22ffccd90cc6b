package integration

import (
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"rolegate/pkg/config"
	"rolegate/pkg/discord"
	"rolegate/pkg/rolecheck"
	"rolegate/pkg/server"
	"rolegate/pkg/server/endpoints"
)

// portCounter is used to allocate unique ports for each test server
var portCounter int32 = 19000

// ServerInstance represents a running rolegate server for a single scenario
type ServerInstance struct {
	ServerURL string
	Config    *config.Config
}

// StartServer starts an in-process rolegate server wired to the stub
// Discord upstream and waits for it to become healthy
func StartServer(stub *DiscordStub, rules map[string]config.GuildRoleRule, gateRule string) (*ServerInstance, error) {
	port := int(atomic.AddInt32(&portCounter, 1))

	cfg := &config.Config{
		ClientID:      "integration-client",
		ClientSecret:  "integration-secret",
		RedirectURI:   fmt.Sprintf("http://localhost:%d/callback", port),
		Scopes:        config.DefaultScopes,
		DiscordAPIURL: stub.URL(),
		GateRule:      gateRule,
		Rules:         rules,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	exchanger := discord.NewExchanger(discord.ExchangerConfig{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
		Scopes:       cfg.Scopes,
		APIBaseURL:   cfg.DiscordAPIURL,
	}, nil)

	client := discord.NewClient(nil, cfg.DiscordAPIURL)
	s := server.NewServer(cfg, exchanger, rolecheck.NewChecker(client), client, "127.0.0.1", strconv.Itoa(port))
	endpoints.RegisterAll(s)

	go func() { _ = s.Start() }()

	instance := &ServerInstance{
		ServerURL: fmt.Sprintf("http://127.0.0.1:%d", port),
		Config:    cfg,
	}
	if err := instance.waitHealthy(); err != nil {
		return nil, err
	}
	return instance, nil
}

func (s *ServerInstance) waitHealthy() error {
	client := &http.Client{Timeout: time.Second}
	for i := 0; i < 50; i++ {
		resp, err := client.Get(s.ServerURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server at %s did not become healthy", s.ServerURL)
}

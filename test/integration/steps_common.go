package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"

	"rolegate/pkg/config"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	stub     *DiscordStub
	instance *ServerInstance
	client   *http.Client

	token        string
	response     *http.Response
	responseBody []byte
}

// NewStepsContext creates a new steps context
func NewStepsContext() *StepsContext {
	return &StepsContext{
		client: &http.Client{
			// Redirects are asserted on, not followed
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a rolegate server gating on role "([^"]*)" in guild "([^"]*)"$`, s.aServerGatingOn)
	sc.Step(`^Discord grants code "([^"]*)" to user "([^"]*)"$`, s.discordGrantsCode)
	sc.Step(`^the user holds role "([^"]*)" in guild "([^"]*)"$`, s.theUserHoldsRole)
	sc.Step(`^the user holds no roles in guild "([^"]*)"$`, s.theUserHoldsNoRoles)

	// Request steps
	sc.Step(`^I GET "([^"]*)"$`, s.iGet)
	sc.Step(`^I POST "([^"]*)" with the user's access token$`, s.iPostWithAccessToken)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
	sc.Step(`^the redirect location should contain "([^"]*)"$`, s.theRedirectLocationShouldContain)

	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if s.stub != nil {
			s.stub.Close()
			s.stub = nil
		}
		return ctx, nil
	})
}

func (s *StepsContext) aServerGatingOn(roleID, guildID string) error {
	s.stub = NewDiscordStub()

	rules := map[string]config.GuildRoleRule{
		"gate": {
			Key:       "gate",
			GuildID:   guildID,
			GuildName: "Gate Guild",
			RoleID:    roleID,
			RoleName:  "Gate role",
		},
	}

	instance, err := StartServer(s.stub, rules, "gate")
	if err != nil {
		return err
	}
	s.instance = instance
	return nil
}

func (s *StepsContext) discordGrantsCode(code, username string) error {
	s.token = "token-for-" + username
	s.stub.GrantCode(code, s.token, username)
	return nil
}

func (s *StepsContext) theUserHoldsRole(roleID, guildID string) error {
	s.stub.SetRoles(s.token, guildID, []string{roleID, "unrelated-role"})
	return nil
}

func (s *StepsContext) theUserHoldsNoRoles(guildID string) error {
	s.stub.SetRoles(s.token, guildID, []string{})
	return nil
}

func (s *StepsContext) iGet(path string) error {
	resp, err := s.client.Get(s.instance.ServerURL + path)
	if err != nil {
		return err
	}
	return s.record(resp)
}

func (s *StepsContext) iPostWithAccessToken(path string) error {
	body := fmt.Sprintf(`{"accessToken": %q}`, s.token)
	resp, err := s.client.Post(
		s.instance.ServerURL+path,
		"application/json",
		strings.NewReader(body),
	)
	if err != nil {
		return err
	}
	return s.record(resp)
}

func (s *StepsContext) record(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	s.response = resp
	s.responseBody = body
	return nil
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBe(field, want string) error {
	var payload map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &payload); err != nil {
		return fmt.Errorf("response is not JSON: %s", s.responseBody)
	}

	got, ok := payload[field]
	if !ok {
		return fmt.Errorf("response has no field %q: %s", field, s.responseBody)
	}
	if fmt.Sprint(got) != want {
		return fmt.Errorf("expected %q to be %q, got %q", field, want, fmt.Sprint(got))
	}
	return nil
}

func (s *StepsContext) theRedirectLocationShouldContain(fragment string) error {
	location := s.response.Header.Get("Location")
	if !strings.Contains(location, fragment) {
		return fmt.Errorf("expected Location %q to contain %q", location, fragment)
	}
	return nil
}

package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAPIURL is the base URL of Discord's public REST API
const DefaultAPIURL = "https://discord.com/api"

// ApiClient is the outbound HTTP seam, injectable for tests
type ApiClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client calls Discord's REST API on the user's behalf
type Client struct {
	api     ApiClient
	baseURL string
}

func NewClient(api ApiClient, baseURL string) *Client {
	if api == nil {
		api = &http.Client{
			Timeout: 10 * time.Second,
		}
	}
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		api:     api,
		baseURL: baseURL,
	}
}

// User is the slice of Discord's user object the dashboard needs
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Member is the slice of Discord's guild member object the checker
// needs. Roles holds the role IDs the user carries in that guild.
type Member struct {
	User  *User    `json:"user,omitempty"`
	Nick  string   `json:"nick,omitempty"`
	Roles []string `json:"roles"`
}

// GuildMember fetches the authenticated user's membership snapshot in
// one guild. One GET per call, no caching, no retries.
func (c *Client) GuildMember(ctx context.Context, accessToken, guildID string) (*Member, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	url := fmt.Sprintf("%s/users/@me/guilds/%s/member", c.baseURL, guildID)
	raw, err := c.get(ctx, url, accessToken, memberLookupError)
	if err != nil {
		return nil, err
	}
	var member Member
	if err := json.Unmarshal(raw, &member); err != nil {
		return nil, &Error{Code: CodeUpstreamUnavailable, Message: "Failed to check role"}
	}
	return &member, nil
}

// Me fetches the authenticated user's profile
func (c *Client) Me(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	raw, err := c.get(ctx, c.baseURL+"/users/@me", accessToken, profileLookupError)
	if err != nil {
		return nil, err
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, &Error{Code: CodeUpstreamUnavailable, Message: "Failed to fetch user profile"}
	}
	return &user, nil
}

func (c *Client) get(ctx context.Context, url, accessToken string, statusErr func(int) *Error) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Code: CodeInternal, Message: "Internal server error"}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.api.Do(req)
	if err != nil {
		return nil, &Error{Code: CodeUpstreamUnavailable, Message: "Failed to check role"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusErr(resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Code: CodeUpstreamUnavailable, Message: "Failed to read upstream response"}
	}
	return raw, nil
}

func profileLookupError(status int) *Error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Code: CodeAccessDenied, Status: status, Message: "Access denied"}
	case http.StatusTooManyRequests:
		return &Error{Code: CodeRateLimited, Status: status, Message: "Rate limited - try again later"}
	default:
		return &Error{Code: CodeUpstreamUnavailable, Status: status, Message: "Failed to fetch user profile"}
	}
}

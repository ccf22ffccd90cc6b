package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Endpoint returns Discord's OAuth 2.0 endpoint under the given API
// base URL. The base is overridable so tests can point the flow at a
// stub server.
func Endpoint(apiBaseURL string) oauth2.Endpoint {
	if apiBaseURL == "" {
		apiBaseURL = DefaultAPIURL
	}
	return oauth2.Endpoint{
		AuthURL:  apiBaseURL + "/oauth2/authorize",
		TokenURL: apiBaseURL + "/oauth2/token",
	}
}

// Token is the result of one authorization-code exchange. It lives for
// the current request only and is never persisted.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// ExchangerConfig carries the OAuth2 credentials for the code exchange
type ExchangerConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
	APIBaseURL   string
}

// Exchanger trades an authorization code for an access token with a
// single POST to Discord's token endpoint
type Exchanger struct {
	conf   *oauth2.Config
	client *http.Client
}

func NewExchanger(cfg ExchangerConfig, client *http.Client) *Exchanger {
	if client == nil {
		client = &http.Client{
			Timeout: 10 * time.Second,
		}
	}
	return &Exchanger{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint:     Endpoint(cfg.APIBaseURL),
		},
		client: client,
	}
}

// AuthCodeURL builds the authorize URL the login route redirects to.
// A non-empty redirectURI overrides the configured redirect_uri; the
// login route uses this to embed a pass-through redirect target.
func (e *Exchanger) AuthCodeURL(redirectURI string) string {
	if redirectURI == "" || redirectURI == e.conf.RedirectURL {
		return e.conf.AuthCodeURL("")
	}
	return e.conf.AuthCodeURL("", oauth2.SetAuthURLParam("redirect_uri", redirectURI))
}

// Exchange performs the code-for-token exchange. A missing code fails
// before any outbound call is made.
func (e *Exchanger) Exchange(ctx context.Context, code string) (*Token, error) {
	if code == "" {
		return nil, ErrMissingCode
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, e.client)
	tok, err := e.conf.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, &Error{
				Code:    CodeTokenExchangeFailed,
				Status:  retrieveErr.Response.StatusCode,
				Message: "Failed to exchange authorization code",
			}
		}
		return nil, &Error{
			Code:    CodeTokenExchangeFailed,
			Message: "Failed to exchange authorization code",
		}
	}

	token := &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	if !tok.Expiry.IsZero() {
		if secs := int(time.Until(tok.Expiry).Seconds()); secs > 0 {
			token.ExpiresIn = secs
		}
	}
	return token, nil
}

package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rolegate/pkg/discord"
	"rolegate/pkg/rolecheck"
	"rolegate/pkg/session"
)

func TestCallback(t *testing.T) {
	t.Run("missing code responds 400", func(t *testing.T) {
		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "").Return(nil, discord.ErrMissingCode)

		testServer := NewTestServer(NewTestConfig(), exchanger, NewMockMemberFetcher(), NewMockProfileFetcher())
		RegisterCallbackEndpoints(testServer)

		req := httptest.NewRequest("GET", "/callback", nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error": "No authorization code provided", "success": false}`, rr.Body.String())
	})

	t.Run("failed exchange responds 500", func(t *testing.T) {
		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "bad-code").
			Return(nil, &discord.Error{Code: discord.CodeTokenExchangeFailed, Status: 400, Message: "Failed to exchange authorization code"})

		testServer := NewTestServer(NewTestConfig(), exchanger, NewMockMemberFetcher(), NewMockProfileFetcher())
		RegisterCallbackEndpoints(testServer)

		req := httptest.NewRequest("GET", "/callback?code=bad-code", nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error": "Failed to exchange authorization code", "success": false}`, rr.Body.String())
	})

	t.Run("api flow returns the gate answer and the token", func(t *testing.T) {
		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "good-code").
			Return(&discord.Token{AccessToken: "access-token"}, nil)

		fetcher := NewMockMemberFetcher()
		fetcher.On("GuildMember", mock.Anything, "access-token", "111222333").
			Return(&discord.Member{Roles: []string{"444555666"}}, nil)

		testServer := NewTestServer(NewTestConfig(), exchanger, fetcher, NewMockProfileFetcher())
		RegisterCallbackEndpoints(testServer)

		req := httptest.NewRequest("GET", "/callback?code=good-code", nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result rolecheck.GateResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.True(t, result.CanMint)
		assert.Equal(t, "Access granted: You can mint this NFT", result.Message)
		assert.Equal(t, "access-token", result.AccessToken)
	})

	t.Run("redirect flow bounces the answer to the frontend", func(t *testing.T) {
		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "good-code").
			Return(&discord.Token{AccessToken: "access-token"}, nil)

		fetcher := NewMockMemberFetcher()
		fetcher.On("GuildMember", mock.Anything, "access-token", "111222333").
			Return(&discord.Member{Roles: []string{"999"}}, nil)

		testServer := NewTestServer(NewTestConfig(), exchanger, fetcher, NewMockProfileFetcher())
		RegisterCallbackEndpoints(testServer)

		target := "/callback?code=good-code&redirect=" + url.QueryEscape("https://mint.example.com/result")
		req := httptest.NewRequest("GET", target, nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)

		location, err := url.Parse(rr.Header().Get("Location"))
		assert.NoError(t, err)
		assert.Equal(t, "mint.example.com", location.Host)
		assert.Equal(t, "false", location.Query().Get("canMint"))
		assert.Equal(t, "Access denied: NADS role required", location.Query().Get("message"))
	})

	t.Run("redirect flow bounces a failed exchange too", func(t *testing.T) {
		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "bad-code").
			Return(nil, &discord.Error{Code: discord.CodeTokenExchangeFailed, Status: 400, Message: "Failed to exchange authorization code"})

		testServer := NewTestServer(NewTestConfig(), exchanger, NewMockMemberFetcher(), NewMockProfileFetcher())
		RegisterCallbackEndpoints(testServer)

		target := "/callback?code=bad-code&redirect=" + url.QueryEscape("https://mint.example.com/result")
		req := httptest.NewRequest("GET", target, nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)

		location, err := url.Parse(rr.Header().Get("Location"))
		assert.NoError(t, err)
		assert.Equal(t, "false", location.Query().Get("canMint"))
		assert.Equal(t, "Failed to exchange authorization code", location.Query().Get("message"))
	})

	t.Run("browser flow sets a session cookie and lands on the dashboard", func(t *testing.T) {
		cfg := NewTestConfig()
		cfg.SessionSecret = "session-secret"

		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "good-code").
			Return(&discord.Token{AccessToken: "access-token"}, nil)

		profiles := NewMockProfileFetcher()
		profiles.On("Me", mock.Anything, "access-token").
			Return(&discord.User{ID: "42", Username: "wumpus"}, nil)

		testServer := NewTestServer(cfg, exchanger, NewMockMemberFetcher(), profiles)
		RegisterCallbackEndpoints(testServer)

		req := httptest.NewRequest("GET", "/callback?code=good-code", nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/dashboard", rr.Header().Get("Location"))

		cookies := rr.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, session.CookieName, cookies[0].Name)

			claims, err := session.NewCodec("session-secret").Parse(cookies[0].Value)
			assert.NoError(t, err)
			assert.Equal(t, "wumpus", claims.Username)
			assert.Equal(t, "access-token", claims.AccessToken)
		}
	})
}

func TestCallbackClean(t *testing.T) {
	t.Run("missing code still responds 200", func(t *testing.T) {
		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "").Return(nil, discord.ErrMissingCode)

		testServer := NewTestServer(NewTestConfig(), exchanger, NewMockMemberFetcher(), NewMockProfileFetcher())
		RegisterCallbackEndpoints(testServer)

		req := httptest.NewRequest("GET", "/callback-clean", nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result rolecheck.GateResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.False(t, result.CanMint)
		assert.Equal(t, "No authorization code provided", result.Message)
	})

	t.Run("failed exchange still responds 200", func(t *testing.T) {
		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "bad-code").
			Return(nil, &discord.Error{Code: discord.CodeTokenExchangeFailed, Status: 400, Message: "Failed to exchange authorization code"})

		testServer := NewTestServer(NewTestConfig(), exchanger, NewMockMemberFetcher(), NewMockProfileFetcher())
		RegisterCallbackEndpoints(testServer)

		req := httptest.NewRequest("GET", "/callback-clean?code=bad-code", nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result rolecheck.GateResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.False(t, result.CanMint)
		assert.Equal(t, "Access denied: Unable to verify Discord role", result.Message)
		assert.Empty(t, result.AccessToken)
	})

	t.Run("grant includes the token for reuse", func(t *testing.T) {
		exchanger := NewMockExchanger()
		exchanger.On("Exchange", mock.Anything, "good-code").
			Return(&discord.Token{AccessToken: "access-token"}, nil)

		fetcher := NewMockMemberFetcher()
		fetcher.On("GuildMember", mock.Anything, "access-token", "111222333").
			Return(&discord.Member{Roles: []string{"444555666"}}, nil)

		testServer := NewTestServer(NewTestConfig(), exchanger, fetcher, NewMockProfileFetcher())
		RegisterCallbackEndpoints(testServer)

		req := httptest.NewRequest("GET", "/callback-clean?code=good-code", nil)
		rr := httptest.NewRecorder()
		testServer.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result rolecheck.GateResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.True(t, result.CanMint)
		assert.Equal(t, "access-token", result.AccessToken)
	})
}

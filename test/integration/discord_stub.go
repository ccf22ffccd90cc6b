package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// stubUser is the Discord-side state the stub serves for one token
type stubUser struct {
	Username string
	Roles    map[string][]string // guild ID -> role IDs
}

// DiscordStub is an in-process stand-in for the Discord API. It issues
// tokens for known authorization codes and answers profile and guild
// member lookups for those tokens.
type DiscordStub struct {
	server *httptest.Server

	mu     sync.Mutex
	codes  map[string]string   // authorization code -> access token
	tokens map[string]stubUser // access token -> user state
}

func NewDiscordStub() *DiscordStub {
	stub := &DiscordStub{
		codes:  make(map[string]string),
		tokens: make(map[string]stubUser),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", stub.handleToken)
	mux.HandleFunc("/users/@me", stub.handleMe)
	mux.HandleFunc("/users/@me/guilds/", stub.handleGuildMember)
	stub.server = httptest.NewServer(mux)

	return stub
}

func (d *DiscordStub) URL() string {
	return d.server.URL
}

func (d *DiscordStub) Close() {
	d.server.Close()
}

// GrantCode registers an authorization code that exchanges into a token
// for the given user
func (d *DiscordStub) GrantCode(code, token, username string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.codes[code] = token
	if _, ok := d.tokens[token]; !ok {
		d.tokens[token] = stubUser{Username: username, Roles: make(map[string][]string)}
	}
}

// SetRoles sets the roles the token's user holds in a guild
func (d *DiscordStub) SetRoles(token, guildID string, roles []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.tokens[token]
	if !ok {
		user = stubUser{Roles: make(map[string][]string)}
	}
	user.Roles[guildID] = roles
	d.tokens[token] = user
}

func (d *DiscordStub) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	d.mu.Lock()
	token, ok := d.codes[r.Form.Get("code")]
	d.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   604800,
	})
}

func (d *DiscordStub) authorizedUser(r *http.Request) (stubUser, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.tokens[token]
	return user, ok
}

func (d *DiscordStub) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := d.authorizedUser(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"id": "1", "username": user.Username})
}

func (d *DiscordStub) handleGuildMember(w http.ResponseWriter, r *http.Request) {
	user, ok := d.authorizedUser(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// /users/@me/guilds/{guildID}/member
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	guildID := parts[len(parts)-2]

	roles, member := user.Roles[guildID]
	if !member {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"user":  map[string]string{"id": "1", "username": user.Username},
		"roles": roles,
	})
}

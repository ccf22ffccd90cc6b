package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROLEGATE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, DefaultDiscordAPIURL, cfg.DiscordAPIURL)
	assert.Equal(t, DefaultScopes, cfg.Scopes)
	assert.Empty(t, cfg.Rules)
	assert.Equal(t, "default", cfg.Source("client_id"))
	assert.False(t, cfg.SessionsEnabled())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `
client_id: file-client
client_secret: file-secret
redirect_uri: http://localhost:3000/callback
gate_rule: NADS
rules:
  NADS:
    guild_id: "111"
    guild_name: NADS Community
    role_id: "222"
    role_name: NADS role
`)
	t.Setenv("ROLEGATE_CONFIG_PATH", dir)

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "file-client", cfg.ClientID)
	assert.Equal(t, "file", cfg.Source("client_id"))

	// keys are normalized to lower case and stamped onto the rule
	assert.Equal(t, "nads", cfg.GateRule)
	rule, ok := cfg.Rule("NaDs")
	assert.True(t, ok)
	assert.Equal(t, "nads", rule.Key)
	assert.Equal(t, "111", rule.GuildID)

	gateRule, ok := cfg.GateGuildRule()
	assert.True(t, ok)
	assert.Equal(t, "222", gateRule.RoleID)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `
client_id: file-client
client_secret: file-secret
`)
	t.Setenv("ROLEGATE_CONFIG_PATH", dir)
	t.Setenv("ROLEGATE_CLIENT_ID", "env-client")
	t.Setenv("ROLEGATE_SCOPES", "identify, guilds.members.read ,")
	t.Setenv("DISCORD_API_URL", "http://stub.local/api/")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "env-client", cfg.ClientID)
	assert.Equal(t, "environment", cfg.Source("client_id"))
	assert.Equal(t, "file-secret", cfg.ClientSecret)
	assert.Equal(t, "file", cfg.Source("client_secret"))
	assert.Equal(t, []string{"identify", "guilds.members.read"}, cfg.Scopes)

	// trailing slash is trimmed so URL joins stay clean
	assert.Equal(t, "http://stub.local/api", cfg.DiscordAPIURL)
	assert.Equal(t, "http://stub.local/api/oauth2/authorize", cfg.AuthorizeURL())
	assert.Equal(t, "http://stub.local/api/oauth2/token", cfg.TokenURL())
}

func TestRulesFileReplacesInlineRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `
rules:
  inline:
    guild_id: "1"
    role_id: "2"
`)
	rulesPath := writeFile(t, dir, "rules.yml", `
rules:
  nads:
    guild_id: "111"
    role_id: "222"
  mons:
    guild_id: "333"
    role_id: "444"
`)
	t.Setenv("ROLEGATE_CONFIG_PATH", dir)
	t.Setenv("ROLEGATE_RULES_FILE", rulesPath)

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, []string{"mons", "nads"}, cfg.RuleKeys())
	_, ok := cfg.Rule("inline")
	assert.False(t, ok)
	assert.Equal(t, "environment", cfg.Source("rules"))

	// with no explicit gate rule the first sorted key wins
	assert.Equal(t, "mons", cfg.GateRule)
}

func TestLoadRulesRejectsInvalidRules(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing role_id", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yml", `
rules:
  nads:
    guild_id: "111"
`)
		_, err := LoadRules(path)
		assert.ErrorContains(t, err, "role_id is required")
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "empty.yml", "rules: {}\n")
		_, err := LoadRules(path)
		assert.ErrorContains(t, err, "defines no rules")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(dir, "nope.yml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ClientID:     "id",
			ClientSecret: "secret",
			RedirectURI:  "http://localhost:3000/callback",
			GateRule:     "nads",
			Rules: map[string]GuildRoleRule{
				"nads": {Key: "nads", GuildID: "111", RoleID: "222"},
			},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.ClientID = ""
	assert.ErrorContains(t, cfg.Validate(), "client_id is required")

	cfg = valid()
	cfg.Rules = nil
	assert.ErrorContains(t, cfg.Validate(), "at least one guild rule is required")

	cfg = valid()
	cfg.GateRule = "other"
	assert.ErrorContains(t, cfg.Validate(), `gate_rule "other" does not match`)

	cfg = valid()
	cfg.Rules["nads"] = GuildRoleRule{Key: "nads", GuildID: "111"}
	assert.ErrorContains(t, cfg.Validate(), `rule "nads"`)
}

func TestAttributesRedactSecrets(t *testing.T) {
	cfg := &Config{
		ClientID:      "id",
		ClientSecret:  "super-secret",
		SessionSecret: "session-secret",
	}

	for _, attr := range cfg.Attributes() {
		switch attr.Name {
		case "client_secret", "session_secret":
			assert.NotContains(t, attr.Value, "secret")
			assert.Contains(t, attr.Value, "redacted")
		}
	}

	text := cfg.FormatText()
	assert.NotContains(t, text, "super-secret")

	jsonOut, err := cfg.FormatJSON()
	assert.NoError(t, err)
	assert.NotContains(t, jsonOut, "super-secret")
}

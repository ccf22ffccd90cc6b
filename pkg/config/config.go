package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/rolegate/config"
	ConfigFileName    = "rolegate.yml"

	DefaultDiscordAPIURL = "https://discord.com/api"
)

// DefaultScopes are the OAuth2 scopes requested when none are configured.
// guilds.members.read is required for the guild member lookup.
var DefaultScopes = []string{"identify", "guilds.members.read"}

// Config holds all rolegate configuration settings
type Config struct {
	// ClientID is the Discord OAuth2 application client ID
	ClientID string `yaml:"client_id" json:"client_id"`

	// ClientSecret is the Discord OAuth2 application client secret
	ClientSecret string `yaml:"client_secret" json:"-"`

	// RedirectURI is the OAuth2 callback URL registered with Discord
	RedirectURI string `yaml:"redirect_uri" json:"redirect_uri"`

	// Scopes is the list of OAuth2 scopes requested at login
	Scopes []string `yaml:"scopes" json:"scopes"`

	// SessionSecret signs the session cookie. When empty the
	// session-based routes (/dashboard, /logout) are disabled.
	SessionSecret string `yaml:"session_secret" json:"-"`

	// DiscordAPIURL is the base URL of the Discord REST API
	DiscordAPIURL string `yaml:"discord_api_url" json:"discord_api_url"`

	// GateRule is the key of the rule that gates /nft-access and the
	// callback result. Defaults to the first rule key in sorted order.
	GateRule string `yaml:"gate_rule" json:"gate_rule"`

	// Rules maps a short key to a (guild, role) pair of interest
	Rules map[string]GuildRoleRule `yaml:"rules" json:"rules"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values
func newDefault() *Config {
	scopes := make([]string, len(DefaultScopes))
	copy(scopes, DefaultScopes)
	return &Config{
		Scopes:        scopes,
		DiscordAPIURL: DefaultDiscordAPIURL,
		Rules:         map[string]GuildRoleRule{},
		sources:       make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("ROLEGATE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	// A separate rules file replaces inline rules entirely
	if rulesFile := os.Getenv("ROLEGATE_RULES_FILE"); rulesFile != "" {
		rules, err := LoadRules(rulesFile)
		if err != nil {
			return nil, err
		}
		config.setRules(rules)
		config.sources["rules"] = "environment"
	}

	if config.GateRule == "" && len(config.Rules) > 0 {
		config.GateRule = config.RuleKeys()[0]
	}

	return config, nil
}

func attributeNames() []string {
	return []string{
		"client_id", "client_secret", "redirect_uri", "scopes",
		"session_secret", "discord_api_url", "gate_rule", "rules",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.ClientID != "" {
		c.ClientID = file.ClientID
		c.sources["client_id"] = "file"
	}
	if file.ClientSecret != "" {
		c.ClientSecret = file.ClientSecret
		c.sources["client_secret"] = "file"
	}
	if file.RedirectURI != "" {
		c.RedirectURI = file.RedirectURI
		c.sources["redirect_uri"] = "file"
	}
	if len(file.Scopes) > 0 {
		c.Scopes = file.Scopes
		c.sources["scopes"] = "file"
	}
	if file.SessionSecret != "" {
		c.SessionSecret = file.SessionSecret
		c.sources["session_secret"] = "file"
	}
	if file.DiscordAPIURL != "" {
		c.DiscordAPIURL = strings.TrimSuffix(file.DiscordAPIURL, "/")
		c.sources["discord_api_url"] = "file"
	}
	if file.GateRule != "" {
		c.GateRule = strings.ToLower(file.GateRule)
		c.sources["gate_rule"] = "file"
	}
	if len(file.Rules) > 0 {
		c.setRules(file.Rules)
		c.sources["rules"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("ROLEGATE_CLIENT_ID"); val != "" {
		c.ClientID = val
		c.sources["client_id"] = "environment"
	}
	if val := os.Getenv("ROLEGATE_CLIENT_SECRET"); val != "" {
		c.ClientSecret = val
		c.sources["client_secret"] = "environment"
	}
	if val := os.Getenv("ROLEGATE_REDIRECT_URI"); val != "" {
		c.RedirectURI = val
		c.sources["redirect_uri"] = "environment"
	}
	if val := os.Getenv("ROLEGATE_SCOPES"); val != "" {
		c.Scopes = splitAndTrim(val)
		c.sources["scopes"] = "environment"
	}
	if val := os.Getenv("ROLEGATE_SESSION_SECRET"); val != "" {
		c.SessionSecret = val
		c.sources["session_secret"] = "environment"
	}
	if val := os.Getenv("DISCORD_API_URL"); val != "" {
		c.DiscordAPIURL = strings.TrimSuffix(val, "/")
		c.sources["discord_api_url"] = "environment"
	}
	if val := os.Getenv("ROLEGATE_GATE_RULE"); val != "" {
		c.GateRule = strings.ToLower(val)
		c.sources["gate_rule"] = "environment"
	}
}

// setRules normalizes keys to lower case and stamps each rule with its key
func (c *Config) setRules(rules map[string]GuildRoleRule) {
	c.Rules = make(map[string]GuildRoleRule, len(rules))
	for key, rule := range rules {
		key = strings.ToLower(key)
		rule.Key = key
		c.Rules[key] = rule
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Rule looks up a guild rule by key, case-insensitively
func (c *Config) Rule(key string) (GuildRoleRule, bool) {
	rule, ok := c.Rules[strings.ToLower(key)]
	return rule, ok
}

// RuleKeys returns the configured rule keys in sorted order
func (c *Config) RuleKeys() []string {
	keys := make([]string, 0, len(c.Rules))
	for key := range c.Rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GateGuildRule returns the rule that gates /nft-access and the callback
func (c *Config) GateGuildRule() (GuildRoleRule, bool) {
	return c.Rule(c.GateRule)
}

// AuthorizeURL returns Discord's OAuth2 authorize endpoint
func (c *Config) AuthorizeURL() string {
	return c.DiscordAPIURL + "/oauth2/authorize"
}

// TokenURL returns Discord's OAuth2 token endpoint
func (c *Config) TokenURL() string {
	return c.DiscordAPIURL + "/oauth2/token"
}

// SessionsEnabled reports whether the session-based routes are active
func (c *Config) SessionsEnabled() bool {
	return c.SessionSecret != ""
}

// Validate validates the configuration for serving
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("client_id is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("client_secret is required")
	}
	if c.RedirectURI == "" {
		return fmt.Errorf("redirect_uri is required")
	}
	if len(c.Rules) == 0 {
		return fmt.Errorf("at least one guild rule is required")
	}
	for key, rule := range c.Rules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("rule %q: %w", key, err)
		}
	}
	if c.GateRule != "" {
		if _, ok := c.Rule(c.GateRule); !ok {
			return fmt.Errorf("gate_rule %q does not match any configured rule (available: %s)",
				c.GateRule, strings.Join(c.RuleKeys(), ", "))
		}
	}
	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. Secrets are redacted.
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "client_id", Value: c.ClientID, Source: c.Source("client_id")},
		{Name: "client_secret", Value: redact(c.ClientSecret), Source: c.Source("client_secret")},
		{Name: "redirect_uri", Value: c.RedirectURI, Source: c.Source("redirect_uri")},
		{Name: "scopes", Value: strings.Join(c.Scopes, ","), Source: c.Source("scopes")},
		{Name: "session_secret", Value: redact(c.SessionSecret), Source: c.Source("session_secret")},
		{Name: "discord_api_url", Value: c.DiscordAPIURL, Source: c.Source("discord_api_url")},
		{Name: "gate_rule", Value: c.GateRule, Source: c.Source("gate_rule")},
		{Name: "rules", Value: strings.Join(c.RuleKeys(), ","), Source: c.Source("rules")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-50s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-50s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-50s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "(redacted, " + strconv.Itoa(len(s)) + " chars)"
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Package config provides configuration management for rolegate.
//
// Configuration is loaded once at process start from a YAML file and
// environment variables, with the environment taking precedence. Each
// attribute tracks its source (default, file or environment) so the
// "configuration show" command can report where a value came from.
//
// # Key Configuration Options
//
//   - ROLEGATE_CLIENT_ID / ROLEGATE_CLIENT_SECRET: Discord OAuth2 application credentials
//   - ROLEGATE_REDIRECT_URI: OAuth2 callback URL registered with Discord
//   - ROLEGATE_SCOPES: comma-separated OAuth2 scopes
//   - ROLEGATE_SESSION_SECRET: enables the session-based dashboard routes
//   - ROLEGATE_RULES_FILE: standalone guild rules file (replaces inline rules)
//   - ROLEGATE_GATE_RULE: rule key that gates /nft-access
//   - DISCORD_API_URL: Discord REST API base (overridable for testing)
//   - BIND_ADDRESS / PORT: server listen address
//
// Secrets are only ever sourced from the environment or the config file,
// never hard-coded, and are redacted in all formatted output.
package config

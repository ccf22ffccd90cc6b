// Package main implements rolegatectl, the CLI for the rolegate server.
//
// rolegate verifies Discord guild role membership over OAuth2 and gates
// NFT minting on it. The server holds no state: every check is a fresh
// round trip to Discord.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/discord: Discord OAuth2 exchange and REST client
//   - pkg/rolecheck: guild role rule evaluation
//   - pkg/session: signed session cookies
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	export ROLEGATE_CLIENT_ID=...
//	export ROLEGATE_CLIENT_SECRET=...
//	export ROLEGATE_REDIRECT_URI=http://localhost:3000/callback
//	export ROLEGATE_RULES_FILE=/etc/rolegate/rules.yml
//
//	# Inspect the effective configuration
//	rolegatectl configuration show
//
//	# Start the server
//	rolegatectl server
//
// # Environment Variables
//
//   - ROLEGATE_CLIENT_ID: Discord OAuth2 client ID
//   - ROLEGATE_CLIENT_SECRET: Discord OAuth2 client secret
//   - ROLEGATE_REDIRECT_URI: OAuth2 callback URL registered with Discord
//   - ROLEGATE_SCOPES: Comma-separated OAuth2 scopes
//   - ROLEGATE_SESSION_SECRET: Enables the session-backed dashboard routes
//   - ROLEGATE_GATE_RULE: Key of the rule that gates minting
//   - ROLEGATE_RULES_FILE: Standalone YAML rules file
//   - ROLEGATE_CONFIG_PATH: Config directory (default /etc/rolegate/config)
//   - DISCORD_API_URL: Discord API base URL (for testing against a stub)
//   - BIND_ADDRESS, PORT: Server listen address
package main

// Package audit provides audit logging for role gating operations.
//
// This package implements structured audit logging for security-relevant
// operations such as OAuth2 code exchanges and guild role checks.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Token exchange events (success/failure)
//   - Role check events (granted/denied/failed)
//
// # Usage
//
//	audit.Log(audit.RoleCheckEvent{
//		Username: username,
//		GuildID:  rule.GuildID,
//		RoleID:   rule.RoleID,
//		HasRole:  hasRole,
//	})
//
// Audit events are logged in RFC5424 syslog format suitable for security
// monitoring. Events carry identifiers only and never access tokens.
package audit

// Package discord holds the two outbound collaborators of the
// verification flow: the OAuth2 authorization-code exchange and the
// guild member lookup.
//
// Both are thin, stateless wrappers over single HTTP calls. Upstream
// failures are caught at the call boundary and translated into typed
// domain errors exactly once; nothing in this package retries, caches
// or refreshes tokens.
package discord

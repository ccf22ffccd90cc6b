// Package server wires the HTTP stack: a gorilla/mux router behind
// request logging, panic recovery and permissive CORS, holding the
// OAuth2 exchanger, role checker and session codec the endpoints use.
package server

package middleware

import (
	"context"
	"net/http"

	"rolegate/pkg/session"
)

type contextKey string

// ClaimsKey is the request context key under which validated session
// claims are stored
const ClaimsKey contextKey = "sessionClaims"

// SessionAuthenticator is middleware that validates the session cookie
type SessionAuthenticator struct {
	Codec *session.Codec
}

// NewSessionAuthenticator creates a new session authenticator middleware
func NewSessionAuthenticator(codec *session.Codec) *SessionAuthenticator {
	return &SessionAuthenticator{Codec: codec}
}

// Middleware returns an HTTP middleware that requires a valid session
// cookie, redirecting to the login flow otherwise
func (s *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		claims, err := s.Codec.Parse(cookie.Value)
		if err != nil {
			http.SetCookie(w, session.ClearCookie())
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromRequest extracts validated session claims from the request
// context, or nil when the request carries none
func ClaimsFromRequest(r *http.Request) *session.Claims {
	claims, _ := r.Context().Value(ClaimsKey).(*session.Claims)
	return claims
}

// Package session issues and parses the signed cookie that carries a
// logged-in user's identity and Discord access token between requests.
// Sessions are stateless: everything lives in the JWT, nothing is kept
// server side.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie set on a browser login flow
const CookieName = "rolegate_session"

// TTL bounds how long a browser session stays valid. Discord access
// tokens outlive this, so expiry here is the effective logout.
const TTL = 24 * time.Hour

// Claims is the JWT payload of a session cookie
type Claims struct {
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a shared HMAC secret
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue mints a signed session token for the given user
func (c *Codec) Issue(username, accessToken string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:    username,
		AccessToken: accessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Parse verifies a session token and returns its claims
func (c *Codec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// Cookie wraps a signed token in the HTTP cookie the browser flow sets
func Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie expires the session cookie
func ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

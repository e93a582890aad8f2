package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleClaim is the namespaced claim key the backend puts roles under.
const RoleClaim = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the client-side view of the logged-in user, derived from the
// access token payload. The signature is not verified here: the server is
// authoritative and the client only needs the claims for display and for
// routing admins to the console.
type Identity struct {
	Subject string
	Email   string
	Role    string
}

// DecodeIdentity parses the token payload without verifying the signature
// and derives the role from the namespaced role claim, which may arrive as a
// single string or as an array.
func DecodeIdentity(token string) (Identity, error) {
	if strings.TrimSpace(token) == "" {
		return Identity{}, ErrInvalidToken
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Identity{}, ErrInvalidToken
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			return Identity{}, ErrTokenExpired
		}
	}

	identity := Identity{Role: RoleUser}
	if sub, ok := claims["sub"].(string); ok {
		identity.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if hasAdminRole(claims[RoleClaim]) {
		identity.Role = RoleAdmin
	}
	return identity, nil
}

func hasAdminRole(claim any) bool {
	switch v := claim.(type) {
	case string:
		return strings.EqualFold(v, "admin")
	case []any:
		for _, role := range v {
			if s, ok := role.(string); ok && strings.EqualFold(s, "admin") {
				return true
			}
		}
	}
	return false
}

// Restore rebuilds the identity from a previously stored access token, so a
// returning session starts authenticated. An expired or malformed token
// clears the store and yields no identity.
func Restore(store *Store) (Identity, bool) {
	token := store.AccessToken()
	if token == "" {
		return Identity{}, false
	}
	identity, err := DecodeIdentity(token)
	if err != nil {
		store.Clear()
		return Identity{}, false
	}
	return identity, true
}

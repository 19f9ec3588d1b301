package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller profile handed to /jwt.
type Identity struct {
	Email string
	Name  string
}

// SessionClaims represents the typed JWT carried in the session cookie.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

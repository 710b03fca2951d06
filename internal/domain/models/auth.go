package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT claims structure issued by the identity
// provider in front of this core.
type SessionClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Username             string `json:"username"`
}

// GetUserID returns the user id from the JWT subject claim.
func (c *SessionClaims) GetUserID() string {
	return c.Subject
}

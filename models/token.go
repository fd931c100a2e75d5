package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by bearer tokens issued by the movie
// API. The subject is the username.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Username duplicates the subject; the API embeds the whole user document
	// in some deployments, of which only the username matters here.
	Username string `json:"Username,omitempty"`
}

// GetUsername returns the explicit Username claim, falling back to "sub".
func (c *TokenClaims) GetUsername() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Subject
}

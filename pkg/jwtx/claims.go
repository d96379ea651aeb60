package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a dashboard session token stays valid.
const DefaultSessionTTL = 12 * time.Hour

// Claims are the session-token claims carried in the dashboard cookie.
// Role and Name are a snapshot taken at login; handlers that need current
// values reload the profile.
type Claims struct {
	jwt.RegisteredClaims

	// SID is the server-side session row this token is bound to.
	SID string `json:"sid"`

	Role string `json:"role,omitempty"`
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds claims for a freshly created session.
func NewSessionClaims(subject, sid, role, name, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SID:  sid,
		Role: role,
		Name: name,
	}
}

// NewJTI returns a random URL-safe token id.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks iss when expected is set.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry checks exp and nbf against now.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

// Validate checks the claims that every session token must carry.
func (c *Claims) Validate(issuer string, now time.Time) error {
	if c.Subject == "" || c.SID == "" {
		return ErrInvalidClaim
	}
	if err := c.ValidateIssuer(issuer); err != nil {
		return err
	}
	return c.ValidateExpiry(now)
}

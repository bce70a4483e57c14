package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the fixed validity window for a session credential.
// There is no refresh mechanism; a token is valid until expiry regardless of
// any server-side state change.
const DefaultSessionTTL = 7 * 24 * time.Hour

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	// ErrInvalidToken is the umbrella error every verification failure
	// wraps, so callers can treat missing/malformed/expired/tampered
	// tokens uniformly.
	ErrInvalidToken = errors.New("jwtx: invalid token")
)

// Claims are session-token claims. The subject is the user id; the email is
// carried as a custom claim so handlers can resolve identity without a store
// lookup.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a session token.
func NewSessionClaims(userID, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
}

// UserID returns the subject claim.
func (c *Claims) UserID() string { return c.Subject }

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

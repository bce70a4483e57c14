package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec issues and verifies HS256-signed session tokens over a single shared
// secret. The session design is stateless by intent: no server-side session
// table and no revocation list.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewCodec creates a session codec from a server-held secret.
func NewCodec(secret []byte, issuer string) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &Codec{secret: secret, issuer: issuer, ttl: DefaultSessionTTL}, nil
}

// Issue produces a signed credential embedding the user id and email.
func (c *Codec) Issue(userID, email string) (string, error) {
	return c.IssueAt(userID, email, time.Now().UTC())
}

// IssueAt is Issue with an explicit issuance time, for tests that need to
// place a token near its expiry boundary.
func (c *Codec) IssueAt(userID, email string, now time.Time) (string, error) {
	claims := NewSessionClaims(userID, email, c.issuer, c.ttl, now)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify validates the token string and returns its parsed Claims. Every
// failure class (missing, malformed, expired, bad signature) wraps
// ErrInvalidToken; nothing escapes this boundary as a panic or a raw
// library error.
func (c *Codec) Verify(tokenStr string) (Claims, error) {
	if tokenStr == "" {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMalformed)
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrInvalidSig)
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrExpired)
		default:
			return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMalformed)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMalformed)
	}

	if err := claims.ValidateIssuer(c.issuer); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return *claims, nil
}

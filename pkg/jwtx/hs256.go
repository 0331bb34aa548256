package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs access-token claims into a compact JWT.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single shared secret. The service
// is both issuer and sole verifier, so symmetric signing is all the token
// contract needs.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds a signer/verifier around the shared secret.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < 16 {
		return nil, errors.New("jwtx: secret must be at least 16 bytes")
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

// Sign produces a compact HS256 JWT for the given claims.
func (h *HS256) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(h.secret)
}

// Verify parses the token, checks the signature, algorithm and issuer, and
// returns the claims. Expiry is validated by the parser; the mapped errors
// let callers distinguish "expired" from "forged".
func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, ErrMalformed
		}
	}

	if !token.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken reports a malformed token or a bad signature.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrTokenExpired reports a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("jwtx: token expired")
)

// Claims are the access-token claims. Only registered claims are carried; the
// subject is the authenticated user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Signer issues and verifies HS256-signed tokens using a single process-wide
// secret. Rotating the secret invalidates every outstanding token.
type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Sign produces a signed token for the given subject, valid for the signer's
// TTL starting at now.
func (s *Signer) Sign(subject string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verify checks the signature, expiry, and issuer of a raw token and returns
// the embedded subject. Expiry is reported as ErrTokenExpired; every other
// failure collapses to ErrInvalidToken.
func (s *Signer) Verify(raw string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.Issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

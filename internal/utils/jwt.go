package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiry for tokens without an exp claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// TokenExpiry reads the exp claim of a JWT access token without verifying
// its signature. The client never holds the signing key; the server remains
// the authority and this is only used to skip requests that are bound to
// fail.
//
// Returns an error if the string is not a JWT or carries no exp claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}

	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether tokenString is a JWT whose exp claim is at or
// before now. Tokens that cannot be inspected are reported as not expired.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}

	return !now.Before(exp)
}

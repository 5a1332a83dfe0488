package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenReader is the read side of the token store. The HTTP client only
// needs this half: it attaches the stored token to outgoing requests.
type TokenReader interface {
	// Token returns the persisted bearer token, or "" when none is stored.
	// Absence is not an error.
	Token(ctx context.Context) (string, error)
}

// TokenStore persists the bearer access token across client restarts under
// the fixed key [AccessTokenKey].
type TokenStore interface {
	TokenReader
	// SaveToken stores token, replacing any previous one. An empty token is
	// rejected with [ErrEmptyToken].
	SaveToken(ctx context.Context, token string) error
	// DeleteToken removes the stored token. Deleting a missing token is not
	// an error.
	DeleteToken(ctx context.Context) error
}

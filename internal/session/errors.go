package session

import "errors"

var (
	// ErrEmptyAccessToken is returned by Login when the backend accepted the
	// credentials but sent no access token.
	ErrEmptyAccessToken = errors.New("login response carries an empty access token")
	ErrSavingToken      = errors.New("error saving access token")
)

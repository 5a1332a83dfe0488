package router

import "errors"

var (
	ErrInvalidPath       = errors.New("invalid navigation path")
	ErrDuplicateRoute    = errors.New("duplicate route")
	ErrNavigationAborted = errors.New("navigation aborted by guard")
	ErrTooManyRedirects  = errors.New("too many guard redirects")
	ErrNoHistory         = errors.New("no previous route in history")
	ErrNoViewFactory     = errors.New("no view factory registered for route")
)

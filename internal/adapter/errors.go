package adapter

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels an [*APIError] unwraps to, one per [ErrorKind]. Callers should
// use [errors.Is] against these values.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrHTTP                = errors.New("http error")
	ErrNetwork             = errors.New("network error")
)

// ErrDecodeResponse is returned when a 2xx body cannot be decoded into the
// caller's result value.
var ErrDecodeResponse = errors.New("error decoding response")

// ErrorKind is the classification of a failed call.
type ErrorKind int

const (
	// KindOther covers every HTTP failure status without its own kind.
	KindOther ErrorKind = iota
	// KindUnauthorized is HTTP 401: the session is no longer valid.
	KindUnauthorized
	// KindForbidden is HTTP 403.
	KindForbidden
	// KindNotFound is HTTP 404.
	KindNotFound
	// KindServer is HTTP 500.
	KindServer
	// KindNetwork means no response was received (connection failure,
	// timeout).
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "other"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnauthorized:
		return ErrUnauthorized
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrInternalServerError
	case KindNetwork:
		return ErrNetwork
	default:
		return ErrHTTP
	}
}

// APIError describes a failed call. Status is 0 for network failures, in
// which case Err holds the transport error.
type APIError struct {
	Kind      ErrorKind
	Status    int
	Message   string // "message" field of the JSON error body, if any
	Body      []byte
	Method    string
	Path      string
	RequestID string
	Err       error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: ", e.Method, e.Path)

	if e.Kind == KindNetwork {
		b.WriteString(ErrNetwork.Error())
		if e.Err != nil {
			b.WriteString(": ")
			b.WriteString(e.Err.Error())
		}
		return b.String()
	}

	fmt.Fprintf(&b, "http %d", e.Status)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap exposes the kind sentinel and, when present, the underlying cause.
func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// AsAPIError is a shorthand for errors.As with an [*APIError] target.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP client core every API wrapper goes
// through when talking to the tieba backend.
//
// [Client.Do] is the single chokepoint: a request interceptor attaches the
// bearer token, a cache-busting stamp for reads and a request id; the
// response step unwraps JSON payloads on success and, on failure, builds an
// [*APIError] whose kind comes from the pure [Classify] function. Side effects
// of a failure (notices, redirects, token removal) are not performed here:
// the host application supplies an [ErrorHandler] that runs before the error
// is returned to the caller.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ErrorHandler performs the user-visible effects of a failed call. It is
// invoked exactly once per failed call, before the same error is returned
// to the caller, so callers can still add local handling.
type ErrorHandler interface {
	HandleError(ctx context.Context, err *APIError)
}

// ErrorHandlerFunc adapts a plain function to [ErrorHandler].
type ErrorHandlerFunc func(ctx context.Context, err *APIError)

// HandleError calls f(ctx, err).
func (f ErrorHandlerFunc) HandleError(ctx context.Context, err *APIError) {
	f(ctx, err)
}

type nopErrorHandler struct{}

func (nopErrorHandler) HandleError(context.Context, *APIError) {}

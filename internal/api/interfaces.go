// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package api exposes one typed wrapper per backend resource domain: auth,
// users, boards (tieba), posts, comments, search and uploads.
//
// Every wrapper builds a path and payload and delegates to a [Requester],
// normally the HTTP client core from package adapter. Wrappers never inspect
// status codes: failures are classified and reported by the core, and the
// resulting error is returned to the caller unchanged.
//
// All paths carry a trailing slash and are relative to the configured base
// URL. Paginated lists decode into [models.Page].
package api

import (
	"context"

	"github.com/MKhiriev/go-tieba/internal/adapter"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_requester_mock.go -package=mock

// Requester performs one HTTP call. payload is sent as the JSON body when
// non-nil; out receives the decoded JSON response when non-nil.
//
// [*adapter.Client] satisfies this interface.
type Requester interface {
	Do(ctx context.Context, method, path string, payload, out any, opts ...adapter.RequestOption) error
}

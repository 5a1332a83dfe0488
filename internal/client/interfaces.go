// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/go-tieba/internal/app"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_effects_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Notifier shows a transient notice to the user.
type Notifier interface {
	Notify(level app.NoticeLevel, message string)
}

// Navigator performs a full navigation that replaces the current view.
type Navigator interface {
	Redirect(path string)
}

// SessionInvalidator drops the in-memory signed-in user.
type SessionInvalidator interface {
	Invalidate()
}

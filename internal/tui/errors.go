// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/internal/api"
	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/session"
)

// ErrUserQuit is returned by Run when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

// inlineError returns the text a screen shows next to its form for err.
// Backend failures yield "": the error-effect layer has already shown a
// notice for them.
func inlineError(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := adapter.AsAPIError(err); ok {
		return ""
	}

	switch {
	case errors.Is(err, api.ErrEmptyQuery):
		return app.MsgEmptyKeyword
	case errors.Is(err, api.ErrFileTooLarge):
		return app.MsgFileTooLarge
	case errors.Is(err, api.ErrFileTypeNotAllowed):
		return app.MsgFileTypeNotAllowed
	case errors.Is(err, session.ErrEmptyAccessToken):
		return app.MsgLoginFailed
	case errors.Is(err, session.ErrSavingToken):
		return app.MsgTokenNotSaved
	}
	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authoritative record of who is signed in.
//
// A [Store] is an explicit object created by [New] and torn down by
// [Store.Close]. It owns the current user, a reference-counted loading flag
// and the client-wide [models.AppConfig], persists the access token through
// a [store.TokenStore], and reports every change to its subscribers as a
// [Snapshot].
//
// Validity follows a small state machine:
//
//	Unknown -> Checking -> Authenticated | Anonymous
//	Authenticated -> Anonymous   (Logout, Invalidate after a 401)
//	Anonymous -> Authenticated   (Login)
package session

import (
	"context"

	"github.com/MKhiriev/go-tieba/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// AuthClient is the part of the auth API the store calls.
// [*api.AuthAPI] satisfies it.
type AuthClient interface {
	Login(ctx context.Context, creds models.LoginCredentials) (models.LoginResponse, error)
	Register(ctx context.Context, data models.RegisterData) (models.RegisterResponse, error)
	Logout(ctx context.Context) error
	GetUserInfo(ctx context.Context) (models.User, error)
}

// ConfigSource provides server-side upload limits for [Store.LoadAppConfig].
// [*api.UploadAPI] satisfies it.
type ConfigSource interface {
	GetUploadConfig(ctx context.Context) (models.UploadConfig, error)
}

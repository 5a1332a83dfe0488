// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires configuration, the durable token store, the HTTP client core, the
// API wrappers, the session store, the router and the terminal UI into a
// single process lifecycle. [ErrorEffects] is the effect layer installed on
// the HTTP client core: it turns every failed call into a notice and, for
// rejected sessions, clears the token and sends the user to the login view.
package client

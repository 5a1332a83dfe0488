// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// source-independent invariants before it is used at startup.
//
// Zero values are allowed here because [NewClientConfig] fills defaults;
// only values that can never be made valid are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.ProfileRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.App.UploadMaxSize < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.APIBasePath != "" && !strings.HasPrefix(cfg.Adapter.APIBasePath, "/") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ProfileRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.UploadMaxSize <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

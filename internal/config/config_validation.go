// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

// validate checks the merged [ClientConfig]. Defaults have already been
// applied, so anything still empty was never configured.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL != "" && cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	// Credentials are required only when a sync server is configured.
	if cfg.Adapter.BaseURL != "" && (cfg.Auth.Login == "" || cfg.Auth.Password == "") {
		return ErrInvalidAuthConfigs
	}

	return nil
}

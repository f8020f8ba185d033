package config

import "errors"

// Validation errors returned by the validate methods when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a base URL without a request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server transport settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates incomplete authentication settings
	// (missing sign key, issuer, duration, or client credentials).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)

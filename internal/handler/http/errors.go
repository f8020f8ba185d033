// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for Authorization header parsing in the auth middleware.
// Match with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader: the request has no Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token part is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

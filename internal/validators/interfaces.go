// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks contact and user input before it reaches
// storage. Validators are injected into services, keeping the rules out of
// the transport layer.
package validators

import "context"

// Validator validates an arbitrary value. Passing field names restricts the
// check to those fields; with none given the whole value is validated.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

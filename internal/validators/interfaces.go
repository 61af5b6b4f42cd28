// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the auth service.
//
// The same rules run in the TUI forms and in the HTTP handlers so both front
// ends reject the same input with the same messages.
//
// Usage:
//  1. Construct a Validator with NewCredentialsValidator.
//  2. Call Validate with the request model and, optionally, the names of the
//     fields to check. Without field names every field of the model is
//     checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

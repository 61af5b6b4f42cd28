// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnknownScheme is returned by [NewPasswordEncoder] for an unsupported
	// scheme name.
	ErrUnknownScheme = errors.New("unknown password scheme")

	// ErrEncodingPassword wraps failures of the underlying hash function.
	ErrEncodingPassword = errors.New("error encoding password")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"
)

// Supported scheme names, as accepted in configuration.
const (
	SchemeBcrypt = "bcrypt"
	SchemeLegacy = "legacy"
)

// NewPasswordEncoder builds the encoder for the named scheme.
// An empty name selects [SchemeBcrypt].
func NewPasswordEncoder(scheme string, bcryptCost int) (PasswordEncoder, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeBcrypt:
		return NewBcryptEncoder(bcryptCost), nil
	case SchemeLegacy:
		return NewLegacyEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

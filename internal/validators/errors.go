// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameTooShort     = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort     = errors.New("password must be at least 4 characters")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmptyCurrentPassword = errors.New("current password is required")
	ErrEmptyUserID          = errors.New("user id is required")
)

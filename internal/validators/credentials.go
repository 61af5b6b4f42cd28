// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-panel/models"
)

// Field names accepted by [CredentialsValidator.Validate].
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldConfirmPassword = "confirm_password"
	FieldUserID          = "user_id"
)

// Minimum lengths, counted in runes.
const (
	MinUsernameLength = 3
	MinPasswordLength = 4
)

// CredentialsValidator validates the request models of the auth panel:
// Credentials, ChangePasswordRequest, ChangeUsernameRequest and a bare user
// id string.
//
// Login input is deliberately not length-checked by callers: the bootstrap
// and legacy credentials predate these rules.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.ChangeUsernameRequest:
		return v.validateChangeUsername(value, fields...)
	case *models.ChangeUsernameRequest:
		return v.validateChangeUsername(*value, fields...)

	case string:
		return v.validateUserID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := checkUsername(c.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := checkPassword(c.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateChangePassword(r models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if r.CurrentPassword == "" {
				return ErrEmptyCurrentPassword
			}
		case FieldNewPassword:
			if err := checkPassword(r.NewPassword); err != nil {
				return err
			}
		case FieldConfirmPassword:
			if r.NewPassword != r.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateChangeUsername(r models.ChangeUsernameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := checkUsername(r.Username); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateUserID(id string, fields ...string) error {
	for _, f := range fields {
		if f != FieldUserID {
			return ErrUnknownField
		}
	}
	if id == "" {
		return ErrEmptyUserID
	}
	return nil
}

func checkUsername(username string) error {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	return nil
}

func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-panel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{"credentials value", models.Credentials{Username: "alice", Password: "pass1"}, nil},
		{"credentials pointer", &models.Credentials{Username: "alice", Password: "pass1"}, nil},
		{"change password value", models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "pass1", ConfirmPassword: "pass1"}, nil},
		{"change password pointer", &models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "pass1", ConfirmPassword: "pass1"}, nil},
		{"change username value", models.ChangeUsernameRequest{Username: "alicia"}, nil},
		{"change username pointer", &models.ChangeUsernameRequest{Username: "alicia"}, nil},
		{"user id", "0190a8f2-0000-7000-8000-000000000000", nil},
		{"unsupported", 42, ErrUnsupportedType},
		{"nil", nil, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Credentials(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "minimum lengths", creds: models.Credentials{Username: "bob", Password: "1234"}},
		{name: "short username", creds: models.Credentials{Username: "bo", Password: "1234"}, wantErr: ErrUsernameTooShort},
		{name: "empty username", creds: models.Credentials{Password: "1234"}, wantErr: ErrUsernameTooShort},
		{name: "short password", creds: models.Credentials{Username: "bob", Password: "123"}, wantErr: ErrPasswordTooShort},
		{name: "runes not bytes", creds: models.Credentials{Username: "жук", Password: "пароль"}},
		{name: "two runes in six bytes", creds: models.Credentials{Username: "жж", Password: "1234"}, wantErr: ErrUsernameTooShort},
		{name: "only password checked", creds: models.Credentials{Username: "x", Password: "1234"}, fields: []string{FieldPassword}},
		{name: "unknown field", creds: models.Credentials{Username: "bob", Password: "1234"}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ChangePassword(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.ChangePasswordRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "pass2", ConfirmPassword: "pass2"}},
		{name: "missing current", req: models.ChangePasswordRequest{NewPassword: "pass2", ConfirmPassword: "pass2"}, wantErr: ErrEmptyCurrentPassword},
		{name: "short new", req: models.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "p", ConfirmPassword: "p"}, wantErr: ErrPasswordTooShort},
		{name: "mismatch", req: models.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "pass2", ConfirmPassword: "pass3"}, wantErr: ErrPasswordMismatch},
		{
			name:   "confirmation skipped",
			req:    models.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "pass2"},
			fields: []string{FieldCurrentPassword, FieldNewPassword},
		},
		{name: "unknown field", req: models.ChangePasswordRequest{}, fields: []string{FieldUsername}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ChangeUsername(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ChangeUsernameRequest{Username: "ali"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ChangeUsernameRequest{Username: "al"}), ErrUsernameTooShort)
	assert.ErrorIs(t, v.Validate(ctx, models.ChangeUsernameRequest{Username: "alice"}, FieldPassword), ErrUnknownField)
}

func TestValidate_UserID(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, "id-1", FieldUserID))
	assert.ErrorIs(t, v.Validate(ctx, ""), ErrEmptyUserID)
	assert.ErrorIs(t, v.Validate(ctx, "id-1", FieldUsername), ErrUnknownField)
}

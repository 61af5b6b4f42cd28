// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-auth-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store client over the auth_users table.
//
// Implementations return [ErrNoUserWasFound] when nothing matches,
// [ErrMultipleUsersFound] when a single-row lookup matches several rows and
// [ErrUsernameAlreadyExists] on a username uniqueness violation. Any other
// failure is wrapped as an unexpected DB error.
type UserRepository interface {
	// FindUsers returns every row matching filter ordered by username
	// ascending. An empty filter returns all rows.
	FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	// FindUser returns the single row matching filter.
	FindUser(ctx context.Context, filter models.UserFilter) (models.User, error)
	// CreateUser inserts user and returns the stored row.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser applies the non-nil fields of update to the row with id.
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) error
	// DeleteUser removes the row with id.
	DeleteUser(ctx context.Context, id string) error
}

// SessionStore is a local string key/value slot that survives restarts.
type SessionStore interface {
	// Get returns the value under key or [ErrSlotNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

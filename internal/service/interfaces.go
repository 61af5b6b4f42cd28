// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates panel users against the auth_users table and
// administers its rows. Every logged-in user may manage every other user.
//
// The current user lives in the session passed to [NewAuthService]. The
// mutating operations other than Login and Logout require one and fail with
// [ErrNotAuthenticated] otherwise.
type AuthService interface {
	// Login verifies credentials and makes the matching user current.
	Login(ctx context.Context, username, password string) (models.User, error)
	// Logout forgets the current user. It never fails because of the store.
	Logout(ctx context.Context) error
	// CurrentUser returns the current user, reloading it from the persisted
	// slot after a restart.
	CurrentUser(ctx context.Context) (models.User, bool)
	// IsAuthenticated reports whether a current user exists.
	IsAuthenticated(ctx context.Context) bool

	// ChangePassword replaces the current user's password after checking
	// currentPassword.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	// ChangeUsername renames the current user.
	ChangeUsername(ctx context.Context, newUsername string) error

	// CreateUser adds a user and returns the stored row.
	CreateUser(ctx context.Context, username, password string) (models.User, error)
	// GetAllUsers lists every user ordered by username.
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser removes any user except the current one.
	DeleteUser(ctx context.Context, userID string) error
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// panel's HTTP handlers and TUI screens.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown to the operator to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording in both
// front ends.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match a stored user.
	MsgInvalidLoginPassword = "invalid username or password"

	// MsgWrongCurrentPassword is returned when a password change is rejected
	// because the current password does not match.
	MsgWrongCurrentPassword = "current password is incorrect"

	// MsgNotLoggedIn is returned by every operation that needs a session
	// when none exists.
	MsgNotLoggedIn = "you are not logged in"

	// MsgUsernameAlreadyExists is returned when a create or rename collides
	// with an existing username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgCannotDeleteSelf is returned when the current user targets its own
	// row for deletion.
	MsgCannotDeleteSelf = "you cannot delete your own user"

	// MsgRemoteStoreError is shown by the panel when the credential store
	// cannot be reached at all. Failures reported by the store itself are
	// shown with their own message.
	MsgRemoteStoreError = "credential store is unavailable, try again later"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the operator cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUserDeleted and MsgPasswordChanged confirm successful operations in
	// the TUI status line.
	MsgUserDeleted     = "user deleted"
	MsgPasswordChanged = "password changed"
	MsgUsernameChanged = "username changed"
	MsgUserCreated     = "user created"
	MsgIDCopied        = "user id copied to clipboard"
	MsgLoggedOut       = "logged out"
)

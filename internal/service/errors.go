// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated      = errors.New("user is not logged in")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUsernameTaken         = errors.New("username already exists")
	ErrSelfDeletionForbidden = errors.New("cannot delete your own user")

	// ErrRemote wraps every store failure surfaced by the service; the store
	// error stays reachable through errors.Is / errors.As.
	ErrRemote = errors.New("remote store error")

	// ErrWrongCurrentPassword is an [ErrInvalidCredentials] raised by
	// ChangePassword.
	ErrWrongCurrentPassword = fmt.Errorf("current password is incorrect: %w", ErrInvalidCredentials)
)

// remoteError tags err as [ErrRemote] with a description of the failed
// operation.
func remoteError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRemote, op, err)
}

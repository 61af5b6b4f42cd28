// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert or update violates
	// the unique constraint on auth_users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrMultipleUsersFound is returned by single-row lookups that match more
	// than one record.
	ErrMultipleUsersFound = errors.New("multiple users were found")

	// ErrSlotNotFound is returned by [SessionStore.Get] when the key is absent.
	ErrSlotNotFound = errors.New("session slot not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [DB.Migrate] for a connection opened
	// with a driver that has no migrations.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrNoUserStore is returned by [NewStorages] when neither a repository
	// option nor a PostgreSQL DSN is supplied.
	ErrNoUserStore = errors.New("no user store configured")
)

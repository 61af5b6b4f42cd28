// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a row of the auth_users table.
//
// Password always holds the encoded form produced by the configured password
// encoder; the plaintext never leaves the service layer.
type User struct {
	// ID is the immutable identifier assigned when the row is inserted.
	ID string `json:"id"`

	// Username is unique across all rows. Uniqueness is enforced by the
	// store and reported as a conflict.
	Username string `json:"username"`

	// Password is the encoded password.
	Password string `json:"password"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the table that holds users.
func (u User) TableName() string {
	return "auth_users"
}

// IsZero reports whether u carries no identity.
func (u User) IsZero() bool {
	return u.ID == ""
}

// Public returns a copy of u without the encoded password, suitable for
// rendering or returning over the panel API.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicUser is the outward representation of [User].
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFilter is an equality filter over auth_users columns.
// Empty fields do not participate in the filter.
type UserFilter struct {
	ID       string
	Username string
	Password string
}

// IsEmpty reports whether no column is constrained.
func (f UserFilter) IsEmpty() bool {
	return f.ID == "" && f.Username == "" && f.Password == ""
}

// UserUpdate describes a partial update of a single user row addressed by id.
// Nil pointer fields are left untouched; UpdatedAt is always written.
type UserUpdate struct {
	Username  *string
	Password  *string
	UpdatedAt time.Time
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of login and create-user requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of a password change request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`

	// ConfirmPassword repeats NewPassword in forms that ask for it twice.
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

// ChangeUsernameRequest is the body of a username change request.
type ChangeUsernameRequest struct {
	Username string `json:"username"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

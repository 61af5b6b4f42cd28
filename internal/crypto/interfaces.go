// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto turns plaintext passwords into the encoded form stored in
// the auth_users table and checks plaintext candidates against it.
//
// Two schemes are available:
//   - [SchemeLegacy]: base64(password + static suffix). Deterministic and
//     reversible, NOT a password hash. Kept only so rows written by earlier
//     deployments keep verifying.
//   - [SchemeBcrypt]: bcrypt with a per-record salt. Its verifier still
//     accepts legacy values so existing rows can be upgraded on login.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_encoder_mock.go -package=mock

// PasswordEncoder encodes plaintext passwords for storage and verifies
// plaintext candidates against stored values.
type PasswordEncoder interface {
	// Encode returns the storable form of plain.
	Encode(plain string) (string, error)

	// Verify reports whether plain matches the stored encoded value.
	Verify(encoded, plain string) bool

	// NeedsUpgrade reports whether encoded was produced by an older scheme
	// and should be re-encoded with Encode after a successful Verify.
	NeedsUpgrade(encoded string) bool
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptEncoder hashes with bcrypt and falls back to the legacy format when
// the stored value is not a bcrypt hash.
//
// The password is reduced to base64(sha256(password)) first, so bcrypt's
// 72-byte input limit never applies.
type bcryptEncoder struct {
	cost int
}

// NewBcryptEncoder returns a bcrypt-backed [PasswordEncoder]. A cost outside
// bcrypt's accepted range is replaced by [bcrypt.DefaultCost].
func NewBcryptEncoder(cost int) PasswordEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptEncoder{cost: cost}
}

func (e *bcryptEncoder) Encode(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(plain), e.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingPassword, err)
	}
	return string(hash), nil
}

func (e *bcryptEncoder) Verify(encoded, plain string) bool {
	if !isBcryptHash(encoded) {
		return verifyLegacy(encoded, plain)
	}
	return bcrypt.CompareHashAndPassword([]byte(encoded), prehash(plain)) == nil
}

func (e *bcryptEncoder) NeedsUpgrade(encoded string) bool {
	return !isBcryptHash(encoded)
}

func isBcryptHash(encoded string) bool {
	return strings.HasPrefix(encoded, "$2a$") ||
		strings.HasPrefix(encoded, "$2b$") ||
		strings.HasPrefix(encoded, "$2y$")
}

func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

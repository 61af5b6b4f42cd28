// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/base64"
)

// legacySuffix is appended to every password before base64 encoding.
// It must stay byte-for-byte identical for existing rows to verify.
const legacySuffix = "salt123"

// legacyEncoder reproduces the historical storage format. It is a reversible
// encoding, not a hash.
type legacyEncoder struct{}

// NewLegacyEncoder returns the deterministic legacy [PasswordEncoder].
func NewLegacyEncoder() PasswordEncoder {
	return legacyEncoder{}
}

func (legacyEncoder) Encode(plain string) (string, error) {
	return encodeLegacy(plain), nil
}

func (legacyEncoder) Verify(encoded, plain string) bool {
	return verifyLegacy(encoded, plain)
}

func (legacyEncoder) NeedsUpgrade(string) bool {
	return false
}

func encodeLegacy(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain + legacySuffix))
}

func verifyLegacy(encoded, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(encodeLegacy(plain))) == 1
}

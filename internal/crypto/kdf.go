// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// DefaultSalt is the salt every deployment has used so far. Changing it makes
// previously produced images unrecoverable, because a passcode typed later
// must still derive the same key.
const DefaultSalt = "encrypted_selfie_app_salt_v1"

// KeySize is the length of a derived key in bytes (256 bits).
const KeySize = 32

// Key is a derived symmetric key. The first half authenticates tokens, the
// second half encrypts them.
type Key [KeySize]byte

// Encode returns the URL-safe base64 form of the key, the textual key format
// expected by Fernet implementations.
func (k Key) Encode() string {
	return base64.URLEncoding.EncodeToString(k[:])
}

// DecodeKey parses a key produced by [Key.Encode].
func DecodeKey(s string) (Key, error) {
	var k Key

	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return k, fmt.Errorf("decode key: %w", err)
	}
	if len(raw) != KeySize {
		return k, fmt.Errorf("decode key: want %d bytes, got %d", KeySize, len(raw))
	}

	copy(k[:], raw)
	return k, nil
}

func (k Key) signingKey() []byte {
	return k[:KeySize/2]
}

func (k Key) encryptionKey() []byte {
	return k[KeySize/2:]
}

// KeyDeriver turns passcodes into keys. It holds one fixed salt, so identical
// passcodes always derive identical keys; there is no per-message randomness.
type KeyDeriver struct {
	salt []byte
}

// NewKeyDeriver returns a [KeyDeriver] bound to a private copy of salt.
func NewKeyDeriver(salt []byte) *KeyDeriver {
	return &KeyDeriver{salt: append([]byte(nil), salt...)}
}

// Derive computes SHA-256(salt ‖ passcode). It performs no validation; the
// caller checks the passcode shape beforehand.
func (d *KeyDeriver) Derive(passcode string) Key {
	h := sha256.New()
	h.Write(d.salt)
	h.Write([]byte(passcode))

	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

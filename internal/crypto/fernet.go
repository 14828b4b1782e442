// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Token layout (before base64url encoding):
//
//	version (1) ‖ timestamp (8, big-endian unix seconds) ‖ IV (16) ‖ ciphertext (n·16) ‖ HMAC-SHA256 (32)
//
// This is the Fernet format, so images produced by other Fernet
// implementations with the same derived key stay readable.
const (
	tokenVersion = 0x80

	versionSize   = 1
	timestampSize = 8
	ivSize        = aes.BlockSize
	macSize       = sha256.Size

	headerSize   = versionSize + timestampSize + ivSize
	overheadSize = headerSize + macSize
)

// Cipher seals text into authenticated tokens and opens them again. The zero
// value is not usable; construct one with [NewCipher]. A Cipher holds no
// per-call state and is safe for concurrent use.
type Cipher struct {
	now    func() time.Time
	random io.Reader
}

// CipherOption customises a [Cipher].
type CipherOption func(*Cipher)

// WithClock overrides the clock whose value is embedded into new tokens.
func WithClock(now func() time.Time) CipherOption {
	return func(c *Cipher) {
		c.now = now
	}
}

// WithRandom overrides the source of initialisation vectors.
func WithRandom(r io.Reader) CipherOption {
	return func(c *Cipher) {
		c.random = r
	}
}

// NewCipher constructs a [Cipher] that reads IVs from crypto/rand and stamps
// tokens with the wall clock.
func NewCipher(opts ...CipherOption) *Cipher {
	c := &Cipher{
		now:    time.Now,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt seals plaintext under key. Every call uses a fresh IV and the
// current timestamp, so sealing the same text twice yields different tokens.
// The returned token is URL-safe base64 text.
func (c *Cipher) Encrypt(plaintext string, key Key) ([]byte, error) {
	block, err := aes.NewCipher(key.encryptionKey())
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pad([]byte(plaintext))
	raw := make([]byte, headerSize+len(padded), headerSize+len(padded)+macSize)

	raw[0] = tokenVersion
	binary.BigEndian.PutUint64(raw[versionSize:], uint64(c.now().Unix()))

	iv := raw[versionSize+timestampSize : headerSize]
	if _, err = io.ReadFull(c.random, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(raw[headerSize:], padded)
	raw = append(raw, sign(key, raw)...)

	token := make([]byte, base64.URLEncoding.EncodedLen(len(raw)))
	base64.URLEncoding.Encode(token, raw)
	return token, nil
}

// Decrypt opens token with key. Any failure is reported as
// [ErrAuthentication]; no partial plaintext is returned. Tokens never expire.
func (c *Cipher) Decrypt(token []byte, key Key) (string, error) {
	plaintext, _, err := c.DecryptWithTime(token, key)
	return plaintext, err
}

// DecryptWithTime is [Cipher.Decrypt] that also reports when the token was
// sealed.
func (c *Cipher) DecryptWithTime(token []byte, key Key) (string, time.Time, error) {
	raw := make([]byte, base64.URLEncoding.DecodedLen(len(token)))
	n, err := base64.URLEncoding.Decode(raw, bytes.TrimSpace(token))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: token is not base64url", ErrAuthentication)
	}
	raw = raw[:n]

	if len(raw) < overheadSize+aes.BlockSize || (len(raw)-overheadSize)%aes.BlockSize != 0 {
		return "", time.Time{}, fmt.Errorf("%w: token has invalid length %d", ErrAuthentication, len(raw))
	}
	if raw[0] != tokenVersion {
		return "", time.Time{}, fmt.Errorf("%w: unknown token version %#x", ErrAuthentication, raw[0])
	}

	body, mac := raw[:len(raw)-macSize], raw[len(raw)-macSize:]
	if !hmac.Equal(mac, sign(key, body)) {
		return "", time.Time{}, fmt.Errorf("%w: hmac mismatch", ErrAuthentication)
	}

	block, err := aes.NewCipher(key.encryptionKey())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: create cipher: %v", ErrAuthentication, err)
	}

	iv := body[versionSize+timestampSize : headerSize]
	plain := make([]byte, len(body)-headerSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body[headerSize:])

	plain, err = unpad(plain)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	issuedAt := time.Unix(int64(binary.BigEndian.Uint64(body[versionSize:])), 0)
	return string(plain), issuedAt, nil
}

// TokenSize returns the exact length of the token [Cipher.Encrypt] produces
// for a plaintext of plaintextLen bytes.
func TokenSize(plaintextLen int) int {
	blocks := plaintextLen/aes.BlockSize + 1
	return base64.URLEncoding.EncodedLen(overheadSize + blocks*aes.BlockSize)
}

// MaxPlaintextSize is the inverse of [TokenSize]: the longest plaintext whose
// token fits into tokenLen bytes, or -1 if not even an empty plaintext fits.
func MaxPlaintextSize(tokenLen int) int {
	raw := tokenLen / 4 * 3
	blocks := (raw - overheadSize) / aes.BlockSize
	if raw < overheadSize || blocks < 1 {
		return -1
	}
	return blocks*aes.BlockSize - 1
}

func sign(key Key, data []byte) []byte {
	h := hmac.New(sha256.New, key.signingKey())
	h.Write(data)
	return h.Sum(nil)
}

// pad applies PKCS#7 padding to a whole number of AES blocks.
func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(append(make([]byte, 0, len(b)+n), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 || len(b)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(b))
	}

	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}

	return b[:len(b)-n], nil
}

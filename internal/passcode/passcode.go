// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package passcode generates and validates the short, human-memorable
// secrets that unlock a hidden message.
//
// A generated passcode is exactly six characters: three Latin letters (upper
// and lower case are distinct) and three decimal digits, shuffled together.
// The space is roughly 52³·10³·6! combinations, which is enough for casual
// secrecy and nothing more.
package passcode

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// Length is the exact number of characters in a passcode.
	Length = 6

	letterCount = 3
	digitCount  = 3

	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// Generate returns a fresh passcode drawn from the operating system CSPRNG.
func Generate() (string, error) {
	return GenerateFrom(rand.Reader)
}

// GenerateFrom returns a fresh passcode using random as the entropy source.
// Every draw (letters, digits and the final permutation) is uniform.
// An error is returned only if random fails.
func GenerateFrom(random io.Reader) (string, error) {
	code := make([]byte, 0, Length)

	for range letterCount {
		c, err := pick(random, letters)
		if err != nil {
			return "", err
		}
		code = append(code, c)
	}
	for range digitCount {
		c, err := pick(random, digits)
		if err != nil {
			return "", err
		}
		code = append(code, c)
	}

	// Fisher-Yates
	for i := len(code) - 1; i > 0; i-- {
		j, err := uniform(random, i+1)
		if err != nil {
			return "", err
		}
		code[i], code[j] = code[j], code[i]
	}

	return string(code), nil
}

// Validate reports whether code can be used to derive a key. It returns
// [ErrMalformedPasscode] unless code is exactly [Length] characters from
// [A-Za-z0-9]. The letter/digit split of generated passcodes is not enforced
// on input.
func Validate(code string) error {
	if len(code) != Length {
		return fmt.Errorf("%w: want %d characters, got %d", ErrMalformedPasscode, Length, len(code))
	}

	for i := 0; i < len(code); i++ {
		if !isAlphanumeric(code[i]) {
			return fmt.Errorf("%w: unexpected character at position %d", ErrMalformedPasscode, i+1)
		}
	}

	return nil
}

func pick(random io.Reader, alphabet string) (byte, error) {
	i, err := uniform(random, len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func uniform(random io.Reader, n int) (int, error) {
	v, err := rand.Int(random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read randomness: %w", err)
	}
	return int(v.Int64()), nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

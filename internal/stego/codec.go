// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import "fmt"

// Embed writes token into the least significant bits of a copy of carrier and
// returns the copy. Bit i of the bitstream (token MSB-first, then the
// delimiter) replaces the low bit of channel byte i; bytes past the end of the
// bitstream are left as they were. carrier itself is never modified.
func Embed(carrier *Image, token []byte) (*Image, error) {
	if err := carrier.validate(); err != nil {
		return nil, err
	}

	need := BitstreamLength(len(token))
	if !CheckCapacity(carrier.ByteCount(), need) {
		return nil, fmt.Errorf("%w: need %d bits, carrier holds %d", ErrCapacity, need, carrier.ByteCount())
	}

	out := carrier.clone()
	i := 0
	write := func(b byte) {
		for shift := 7; shift >= 0; shift-- {
			out.Pix[i] = out.Pix[i]&^1 | (b>>shift)&1
			i++
		}
	}

	for _, b := range token {
		write(b)
	}
	write(byte(delimiter >> 8))
	write(byte(delimiter & 0xff))

	return out, nil
}

// Extract reads the low bit of every channel byte in embedding order and
// returns the bytes preceding the first delimiter match. Bits that do not make
// up a whole byte before the delimiter are dropped. If the ciphertext itself
// contains the delimiter pattern the token comes back truncated; decryption
// then rejects it.
func Extract(img *Image) ([]byte, error) {
	if err := img.validate(); err != nil {
		return nil, err
	}

	var (
		window uint16
		cur    byte
		out    = make([]byte, 0, img.ByteCount()/8)
	)

	for n, v := range img.Pix {
		bit := v & 1
		window = window<<1 | uint16(bit)
		cur = cur<<1 | bit

		read := n + 1
		if read%8 == 0 {
			out = append(out, cur)
			cur = 0
		}

		if read >= DelimiterBits && window == delimiter {
			return out[:(read-DelimiterBits)/8], nil
		}
	}

	return nil, ErrNoPayloadFound
}

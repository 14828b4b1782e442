package stego

import "errors"

var (
	// ErrCapacity is returned by Embed when the carrier has fewer channel
	// bytes than the bitstream has bits.
	ErrCapacity = errors.New("payload exceeds carrier capacity")
	// ErrNoPayloadFound is returned by Extract when the end-of-payload
	// delimiter never appears.
	ErrNoPayloadFound = errors.New("no payload found")
	// ErrInvalidImage reports a carrier whose pixel buffer does not match its
	// dimensions.
	ErrInvalidImage = errors.New("invalid carrier image")
)

package models

import (
	"image"
	"time"
)

// HideRequest describes one hide operation.
type HideRequest struct {
	// Image is the decoded carrier.
	Image image.Image
	// Message is the secret text.
	Message string
	// Mode decides whether a passcode is generated or supplied.
	Mode PasscodeMode
	// TakenAt, when non-zero, is stamped into the sealed note.
	TakenAt time.Time
}

// HideResult is the outcome of a successful hide operation.
type HideResult struct {
	// Image is the stego image. It must be stored in a lossless format.
	Image *image.NRGBA
	// Passcode is set only when the request used [GenerateNew].
	Passcode string
	// PayloadBits is the number of carrier bytes that were rewritten.
	PayloadBits int
	// CapacityBits is the number of channel bytes in the carrier.
	CapacityBits int
}

type RevealRequest struct {
	Image    image.Image
	Passcode string
}

type RevealResult struct {
	Note SecretNote
	// SealedAt is the timestamp the cipher embedded into the token.
	SealedAt time.Time
}

// CapacityReport describes how much a carrier can hold.
type CapacityReport struct {
	Width           int
	Height          int
	CapacityBits    int
	MaxTokenBytes   int
	MaxMessageBytes int
	// MaxStampedMessageBytes is MaxMessageBytes less the note stamp header.
	MaxStampedMessageBytes int
}

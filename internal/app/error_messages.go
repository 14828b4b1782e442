// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable wording the CLI prints for failures.
//
// All Msg* constants describe the outcome of an operation in terms a user can
// act on. [Message] picks the one matching an error returned by any backend,
// local or remote, so both modes read the same.
package app

import (
	"errors"

	"github.com/MKhiriev/go-secret-selfie/internal/adapter"
	"github.com/MKhiriev/go-secret-selfie/internal/client"
	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
	"github.com/MKhiriev/go-secret-selfie/internal/imaging"
	"github.com/MKhiriev/go-secret-selfie/internal/passcode"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/internal/stego"
)

const (
	// MsgMalformedPasscode is shown when a passcode is not six ASCII letters
	// or digits.
	MsgMalformedPasscode = "the passcode must be exactly 6 letters or digits"

	// MsgCapacityExceeded is shown when the sealed message does not fit into
	// the carrier.
	MsgCapacityExceeded = "the message is too long for this image; use a larger image or a shorter message"

	// MsgAuthenticationFailed covers a wrong passcode as well as an image
	// whose hidden token was damaged. The two cannot be told apart.
	MsgAuthenticationFailed = "wrong passcode, or the image was modified after the message was hidden"

	MsgNoPayloadFound = "this image does not carry a hidden message"

	// MsgUnsupportedImage is shown for unreadable input files.
	MsgUnsupportedImage = "the image could not be read; use PNG, BMP, TIFF, JPEG, GIF or WebP"

	// MsgLossyOutput is shown when the output path names a format that would
	// destroy the hidden bits.
	MsgLossyOutput = "stego images must be saved as .png, .bmp or .tiff"

	MsgEmptyMessage = "the message must not be empty"

	MsgUploadTooLarge = "the image is larger than the server accepts"

	// MsgServerRequired is shown for gallery commands run in local mode.
	MsgServerRequired = "this command needs a server; pass --server"

	MsgGalleryDisabled = "the server does not keep a gallery"

	// MsgInvalidToken is shown when a download token is malformed, forged or
	// past its expiry.
	MsgInvalidToken = "the download token is invalid or has expired"

	MsgNotFound = "nothing was found under this download token; it may have expired"

	MsgServerError = "the server failed to process the request"
)

var messages = []struct {
	target error
	msg    string
}{
	{passcode.ErrMalformedPasscode, MsgMalformedPasscode},
	{stego.ErrCapacity, MsgCapacityExceeded},
	{crypto.ErrAuthentication, MsgAuthenticationFailed},
	{stego.ErrNoPayloadFound, MsgNoPayloadFound},
	{imaging.ErrDecode, MsgUnsupportedImage},
	{imaging.ErrUnsupportedFormat, MsgUnsupportedImage},
	{adapter.ErrUnsupportedImage, MsgUnsupportedImage},
	{imaging.ErrLossyFormat, MsgLossyOutput},
	{client.ErrLossyOutput, MsgLossyOutput},
	{client.ErrEmptyMessage, MsgEmptyMessage},
	{adapter.ErrUploadTooLarge, MsgUploadTooLarge},
	{client.ErrServerRequired, MsgServerRequired},
	{service.ErrGalleryDisabled, MsgGalleryDisabled},
	{service.ErrGalleryTokenInvalid, MsgInvalidToken},
	{adapter.ErrNotFound, MsgNotFound},
	{adapter.ErrServer, MsgServerError},
}

// Message returns the user-facing text for err. Errors without a dedicated
// message are returned verbatim.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return err.Error()
}

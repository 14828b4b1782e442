// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-shape errors detected by the handlers before any service call.
var (
	// ErrMissingImage is returned when the multipart form has no "image" part.
	ErrMissingImage = errors.New("missing `image` form file")

	// ErrEmptyMessage is returned by the hide endpoint for a blank message.
	ErrEmptyMessage = errors.New("empty `message` form field")

	// ErrInvalidForm is returned when the body is not a parseable
	// multipart form.
	ErrInvalidForm = errors.New("invalid multipart form")

	// ErrUploadTooLarge is returned when the body exceeds the configured
	// upload limit.
	ErrUploadTooLarge = errors.New("upload is too large")

	// ErrInvalidFlag is returned for a boolean form field that does not parse.
	ErrInvalidFlag = errors.New("invalid boolean form field")
)

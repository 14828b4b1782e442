package adapter

import "errors"

// Transport-level errors that have no counterpart in the core packages.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnsupportedImage = errors.New("unsupported image")
	ErrUploadTooLarge   = errors.New("upload too large")
	ErrNotFound         = errors.New("not found")
	ErrServer           = errors.New("server error")
	ErrBadResponse      = errors.New("unexpected server response")
)

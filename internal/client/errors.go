package client

import "errors"

var (
	// ErrServerRequired is returned by gallery commands run without --server.
	ErrServerRequired = errors.New("this command needs a server, pass --server")
	ErrLossyOutput    = errors.New("output must be a lossless format: .png, .bmp or .tiff")
	ErrEmptyMessage   = errors.New("message must not be empty")
)

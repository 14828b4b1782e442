// Package http implements the HTTP API of the secret-selfie server.
//
// Handlers decode multipart image uploads, delegate to the stego and gallery
// services and translate sentinel errors into stable JSON error codes.
// Request tracing, access logging, response compression, request timeouts
// and upload limits are applied as chi middleware.
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a remote secret-selfie server over its HTTP API.
//
// [ServerAdapter] satisfies [service.StegoService], so the client runs the
// same commands against a server as it does locally. Error codes in API
// responses are mapped back to the sentinel errors of the core packages by
// mapHTTPError, so callers keep using [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/models"
)

// ServerAdapter is a remote [service.StegoService] plus the server-only
// operations.
type ServerAdapter interface {
	service.StegoService

	// HideAndPublish is Hide that also stores the result in the server
	// gallery and returns the download token.
	HideAndPublish(ctx context.Context, req models.HideRequest) (models.HideResult, models.GalleryEntry, error)

	// Fetch downloads a published image. The returned bytes are a PNG file.
	Fetch(ctx context.Context, token string) ([]byte, error)

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}

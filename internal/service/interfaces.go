package service

import (
	"context"
	"image"

	"github.com/MKhiriev/go-secret-selfie/models"
)

// StegoService runs the hide and reveal pipelines.
type StegoService interface {
	// GeneratePasscode returns a fresh passcode. It is never stored.
	GeneratePasscode(ctx context.Context) (string, error)
	// Hide seals req.Message under a passcode and embeds the token into a
	// copy of req.Image.
	Hide(ctx context.Context, req models.HideRequest) (models.HideResult, error)
	// Reveal extracts and opens the token hidden in req.Image.
	Reveal(ctx context.Context, req models.RevealRequest) (models.RevealResult, error)
	// Capacity reports how large a message img can carry.
	Capacity(ctx context.Context, img image.Image) (models.CapacityReport, error)
}

// GalleryService publishes stego images for later download.
type GalleryService interface {
	Publish(ctx context.Context, img image.Image) (models.GalleryEntry, error)
	Fetch(ctx context.Context, token string) (models.GalleryImage, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

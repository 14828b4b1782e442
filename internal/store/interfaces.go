package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-selfie/models"
)

// GalleryRepository persists published stego images.
type GalleryRepository interface {
	// Save stores a new image. IDs are unique; saving an existing ID fails
	// with ErrImageAlreadyExists.
	Save(ctx context.Context, image models.GalleryImage) error
	// Get loads an image that has not expired at now. Missing or expired
	// images yield ErrImageNotFound.
	Get(ctx context.Context, id uuid.UUID, now time.Time) (models.GalleryImage, error)
	// DeleteExpired removes every image whose expiry is before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database call is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

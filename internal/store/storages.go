package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
)

// Storages groups the repositories of the server. It is nil-safe: a nil
// *Storages means the gallery is disabled.
type Storages struct {
	GalleryRepository GalleryRepository

	db *DB
}

// NewStorages connects to the gallery database, applies migrations and
// builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return newStorages(db), nil
}

func newStorages(db *DB) *Storages {
	return &Storages{
		GalleryRepository: NewGalleryRepository(db),
		db:                db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
)

// GalleryCleanupWorker periodically removes expired gallery images.
type GalleryCleanupWorker struct {
	gallery  service.GalleryService
	interval time.Duration
	logger   *logger.Logger
}

func NewGalleryCleanupWorker(gallery service.GalleryService, interval time.Duration, logger *logger.Logger) *GalleryCleanupWorker {
	return &GalleryCleanupWorker{
		gallery:  gallery,
		interval: interval,
		logger:   logger,
	}
}

// Run purges once immediately and then on every tick until ctx is done.
func (w *GalleryCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("gallery cleanup worker started")
	defer w.logger.Info().Msg("gallery cleanup worker stopped")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.purge(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// both channels may be ready at once
			if ctx.Err() != nil {
				return
			}
			w.purge(ctx)
		}
	}
}

func (w *GalleryCleanupWorker) purge(ctx context.Context) {
	deleted, err := w.gallery.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "GalleryCleanupWorker.purge").Msg("error purging expired gallery images")
		}
		return
	}

	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Msg("expired gallery images purged")
	}
}

package service

import (
	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/store"
	"github.com/MKhiriev/go-secret-selfie/models"
)

type Services struct {
	StegoService   StegoService
	GalleryService GalleryService
	AppInfoService AppInfoService

	// GalleryEnabled is false when GalleryService only answers
	// ErrGalleryDisabled.
	GalleryEnabled bool
}

// NewServices wires the server services. storages may be nil when no
// gallery database is configured.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	var galleryRepository store.GalleryRepository
	if storages != nil {
		galleryRepository = storages.GalleryRepository
	}

	return &Services{
		StegoService:   NewStegoService(cfg.App, logger),
		GalleryService: NewGalleryService(galleryRepository, cfg.App, logger),
		AppInfoService: appInfo,
		GalleryEnabled: galleryRepository != nil,
	}, nil
}

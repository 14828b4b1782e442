package client

import (
	"context"

	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/models"
)

type localBackend struct {
	service.StegoService
	appInfo service.AppInfoService
}

// NewLocalBackend runs the pipeline in-process.
func NewLocalBackend(stego service.StegoService, appInfo service.AppInfoService) Backend {
	return &localBackend{StegoService: stego, appInfo: appInfo}
}

func (l *localBackend) HideAndPublish(context.Context, models.HideRequest) (models.HideResult, models.GalleryEntry, error) {
	return models.HideResult{}, models.GalleryEntry{}, ErrServerRequired
}

func (l *localBackend) Fetch(context.Context, string) ([]byte, error) {
	return nil, ErrServerRequired
}

func (l *localBackend) Version(ctx context.Context) (string, error) {
	return l.appInfo.GetAppVersion(ctx), nil
}

package http

import (
	"time"

	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
)

type Handler struct {
	services *service.Services

	maxUploadBytes int64
	requestTimeout time.Duration
	now            func() time.Time
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: cfg.MaxUploadBytes,
		requestTimeout: cfg.RequestTimeout,
		now:            time.Now,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

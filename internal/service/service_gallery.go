package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/imaging"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/store"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
	"github.com/MKhiriev/go-secret-selfie/models"
)

type galleryService struct {
	repository store.GalleryRepository
	ids        *utils.UUIDGenerator
	now        func() time.Time

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewGalleryService returns a GalleryService over repository. A nil
// repository yields a service whose every call fails with
// [ErrGalleryDisabled].
func NewGalleryService(repository store.GalleryRepository, cfg config.App, logger *logger.Logger) GalleryService {
	if repository == nil {
		return disabledGallery{}
	}

	return &galleryService{
		repository:    repository,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (s *galleryService) Publish(ctx context.Context, img image.Image) (models.GalleryEntry, error) {
	log := logger.FromContext(ctx)

	if img == nil {
		return models.GalleryEntry{}, ErrNoImage
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		log.Err(err).Str("func", "galleryService.Publish").Msg("error encoding gallery image")
		return models.GalleryEntry{}, fmt.Errorf("encode gallery image: %w", err)
	}

	now := s.now().UTC()
	b := img.Bounds()
	stored := models.GalleryImage{
		ID:        s.ids.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenDuration),
		Width:     b.Dx(),
		Height:    b.Dy(),
		PNG:       buf.Bytes(),
	}

	token, err := utils.GenerateDownloadToken(s.tokenIssuer, stored.ID, stored.ExpiresAt, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "galleryService.Publish").Msg("error signing download token")
		return models.GalleryEntry{}, fmt.Errorf("sign download token: %w", err)
	}

	if err = s.repository.Save(ctx, stored); err != nil {
		log.Err(err).Str("func", "galleryService.Publish").Msg("error saving gallery image")
		return models.GalleryEntry{}, fmt.Errorf("save gallery image: %w", err)
	}

	log.Info().
		Str("func", "galleryService.Publish").
		Stringer("image_id", stored.ID).
		Time("expires_at", stored.ExpiresAt).
		Int("size", stored.Size()).
		Msg("gallery image published")

	return models.GalleryEntry{
		ID:            stored.ID,
		ExpiresAt:     stored.ExpiresAt,
		DownloadToken: token.String(),
	}, nil
}

func (s *galleryService) Fetch(ctx context.Context, token string) (models.GalleryImage, error) {
	parsed, err := utils.ValidateAndParseDownloadToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "galleryService.Fetch").Msg("download token rejected")
		return models.GalleryImage{}, fmt.Errorf("%w: %w", ErrGalleryTokenInvalid, err)
	}

	img, err := s.repository.Get(ctx, parsed.ImageID, s.now())
	if err != nil {
		return models.GalleryImage{}, fmt.Errorf("load gallery image: %w", err)
	}

	return img, nil
}

func (s *galleryService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repository.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("purge expired gallery images: %w", err)
	}
	return deleted, nil
}

type disabledGallery struct{}

func (disabledGallery) Publish(context.Context, image.Image) (models.GalleryEntry, error) {
	return models.GalleryEntry{}, ErrGalleryDisabled
}

func (disabledGallery) Fetch(context.Context, string) (models.GalleryImage, error) {
	return models.GalleryImage{}, ErrGalleryDisabled
}

func (disabledGallery) PurgeExpired(context.Context) (int64, error) {
	return 0, ErrGalleryDisabled
}

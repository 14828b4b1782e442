package service

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/mock"
	"github.com/MKhiriev/go-secret-selfie/internal/store"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
	"github.com/MKhiriev/go-secret-selfie/models"
)

var testGalleryConfig = config.App{
	TokenSignKey:  "gallery-secret",
	TokenIssuer:   "go-secret-selfie",
	TokenDuration: time.Hour,
}

func newTestGallerySvc(t *testing.T, now time.Time) (*galleryService, *mock.MockGalleryRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockGalleryRepository(ctrl)

	svc := NewGalleryService(repo, testGalleryConfig, logger.Nop()).(*galleryService)
	svc.now = func() time.Time { return now }

	return svc, repo
}

func TestGalleryService_Publish(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	svc, repo := newTestGallerySvc(t, now)
	img := gradient(5, 4)

	var saved models.GalleryImage
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, g models.GalleryImage) error {
			saved = g
			return nil
		},
	)

	entry, err := svc.Publish(context.Background(), img)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, saved.ID, entry.ID)
	assert.Equal(t, 5, saved.Width)
	assert.Equal(t, 4, saved.Height)
	assert.True(t, saved.CreatedAt.Equal(now))
	assert.True(t, saved.ExpiresAt.Equal(now.Add(time.Hour)))
	assert.True(t, entry.ExpiresAt.Equal(saved.ExpiresAt))

	decoded, err := png.Decode(bytes.NewReader(saved.PNG))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	token, err := utils.ValidateAndParseDownloadToken(entry.DownloadToken, testGalleryConfig.TokenSignKey, testGalleryConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, token.ImageID)
}

func TestGalleryService_Publish_SaveError(t *testing.T) {
	svc, repo := newTestGallerySvc(t, time.Now())

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrImageNotSaved)

	_, err := svc.Publish(context.Background(), gradient(2, 2))
	assert.ErrorIs(t, err, store.ErrImageNotSaved)
}

func TestGalleryService_Publish_SigningErrorSkipsSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockGalleryRepository(ctrl)

	cfg := testGalleryConfig
	cfg.TokenSignKey = ""
	svc := NewGalleryService(repo, cfg, logger.Nop())

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Publish(context.Background(), gradient(2, 2))
	assert.Error(t, err)
}

func TestGalleryService_Publish_NoImage(t *testing.T) {
	svc, _ := newTestGallerySvc(t, time.Now())

	_, err := svc.Publish(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestGalleryService_Fetch(t *testing.T) {
	now := time.Now()
	svc, repo := newTestGallerySvc(t, now)

	id := uuid.New()
	token, err := utils.GenerateDownloadToken(testGalleryConfig.TokenIssuer, id, now.Add(time.Hour), testGalleryConfig.TokenSignKey)
	require.NoError(t, err)

	want := models.GalleryImage{ID: id, PNG: []byte("png")}
	repo.EXPECT().Get(gomock.Any(), id, now).Return(want, nil)

	got, err := svc.Fetch(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGalleryService_Fetch_InvalidTokens(t *testing.T) {
	now := time.Now()
	svc, _ := newTestGallerySvc(t, now)
	id := uuid.New()

	foreignKey, err := utils.GenerateDownloadToken(testGalleryConfig.TokenIssuer, id, now.Add(time.Hour), "other-secret")
	require.NoError(t, err)
	foreignIssuer, err := utils.GenerateDownloadToken("someone-else", id, now.Add(time.Hour), testGalleryConfig.TokenSignKey)
	require.NoError(t, err)
	expired, err := utils.GenerateDownloadToken(testGalleryConfig.TokenIssuer, id, now.Add(-time.Hour), testGalleryConfig.TokenSignKey)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":        "not-a-jwt",
		"foreign key":    foreignKey.String(),
		"foreign issuer": foreignIssuer.String(),
		"expired":        expired.String(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Fetch(context.Background(), token)
			assert.ErrorIs(t, err, ErrGalleryTokenInvalid)
		})
	}
}

func TestGalleryService_Fetch_NotFound(t *testing.T) {
	now := time.Now()
	svc, repo := newTestGallerySvc(t, now)

	id := uuid.New()
	token, err := utils.GenerateDownloadToken(testGalleryConfig.TokenIssuer, id, now.Add(time.Hour), testGalleryConfig.TokenSignKey)
	require.NoError(t, err)

	repo.EXPECT().Get(gomock.Any(), id, now).Return(models.GalleryImage{}, store.ErrImageNotFound)

	_, err = svc.Fetch(context.Background(), token.String())
	assert.ErrorIs(t, err, store.ErrImageNotFound)
}

func TestGalleryService_PurgeExpired(t *testing.T) {
	now := time.Now()
	svc, repo := newTestGallerySvc(t, now)

	repo.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(4), nil)

	n, err := svc.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestGalleryService_PurgeExpired_Error(t *testing.T) {
	svc, repo := newTestGallerySvc(t, time.Now())

	repo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

	_, err := svc.PurgeExpired(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestGalleryService_Disabled(t *testing.T) {
	svc := NewGalleryService(nil, testGalleryConfig, logger.Nop())
	ctx := context.Background()

	_, err := svc.Publish(ctx, gradient(2, 2))
	assert.ErrorIs(t, err, ErrGalleryDisabled)

	_, err = svc.Fetch(ctx, "token")
	assert.ErrorIs(t, err, ErrGalleryDisabled)

	_, err = svc.PurgeExpired(ctx)
	assert.ErrorIs(t, err, ErrGalleryDisabled)
}

func TestNewServices_WithoutStorages(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{Salt: "salt", Version: "1.0.0"}}

	services, err := NewServices(nil, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	_, err = services.GalleryService.Publish(context.Background(), gradient(2, 2))
	assert.ErrorIs(t, err, ErrGalleryDisabled)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
	assert.False(t, services.GalleryEnabled)
}

func TestNewServices_WithStorages(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := &config.StructuredConfig{App: testGalleryConfig}
	cfg.App.Version = "1.0.0"

	services, err := NewServices(&store.Storages{GalleryRepository: mock.NewMockGalleryRepository(ctrl)}, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.True(t, services.GalleryEnabled)
}

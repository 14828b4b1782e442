package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/mock"
)

func TestGalleryCleanupWorker_PurgesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	gallery := mock.NewMockGalleryService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	gallery.EXPECT().PurgeExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		calls++
		if calls == 3 {
			cancel()
		}
		return int64(calls), nil
	}).Times(3)

	w := NewGalleryCleanupWorker(gallery, time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestGalleryCleanupWorker_KeepsRunningAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gallery := mock.NewMockGalleryService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	gomock.InOrder(
		gallery.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), errors.New("db down")),
		gallery.EXPECT().PurgeExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
			cancel()
			return 0, nil
		}),
	)

	NewGalleryCleanupWorker(gallery, time.Millisecond, logger.Nop()).Run(ctx)
}

func TestGalleryCleanupWorker_PurgesOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gallery := mock.NewMockGalleryService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	gallery.EXPECT().PurgeExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		cancel()
		return 0, nil
	})

	// an hour-long interval means only the initial purge can happen
	NewGalleryCleanupWorker(gallery, time.Hour, logger.Nop()).Run(ctx)
}

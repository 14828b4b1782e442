package service

import (
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/passcode"
	"github.com/MKhiriev/go-secret-selfie/internal/stego"
	"github.com/MKhiriev/go-secret-selfie/models"
)

func newTestStegoService(opts ...StegoServiceOption) StegoService {
	return NewStegoService(config.App{Salt: crypto.DefaultSalt}, logger.Nop(), opts...)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8(x + y), A: 0xff})
		}
	}
	return img
}

func TestStegoService_GeneratePasscode(t *testing.T) {
	svc := newTestStegoService()

	code, err := svc.GeneratePasscode(context.Background())
	require.NoError(t, err)
	assert.NoError(t, passcode.Validate(code))
}

func TestStegoService_GeneratePasscode_Error(t *testing.T) {
	svc := newTestStegoService(WithPasscodeGenerator(func() (string, error) {
		return "", errors.New("entropy exhausted")
	}))

	_, err := svc.GeneratePasscode(context.Background())
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestStegoService_HideReveal_ExistingPasscode(t *testing.T) {
	svc := newTestStegoService()
	ctx := context.Background()

	hidden, err := svc.Hide(ctx, models.HideRequest{
		Image:   gradient(17, 17),
		Message: "Hello",
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	require.NoError(t, err)
	assert.Empty(t, hidden.Passcode, "an existing passcode is never echoed back")
	assert.Equal(t, 816, hidden.PayloadBits)
	assert.Equal(t, 17*17*3, hidden.CapacityBits)

	revealed, err := svc.Reveal(ctx, models.RevealRequest{Image: hidden.Image, Passcode: "aB3c7D"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", revealed.Note.Message)
	assert.True(t, revealed.Note.TakenAt.IsZero())
	assert.WithinDuration(t, time.Now(), revealed.SealedAt, time.Minute)
}

func TestStegoService_HideReveal_GeneratedPasscode(t *testing.T) {
	svc := newTestStegoService(WithPasscodeGenerator(func() (string, error) { return "Q1w2E3", nil }))
	ctx := context.Background()

	hidden, err := svc.Hide(ctx, models.HideRequest{
		Image:   gradient(40, 30),
		Message: "meet me at noon",
		Mode:    models.GenerateNew{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Q1w2E3", hidden.Passcode)

	revealed, err := svc.Reveal(ctx, models.RevealRequest{Image: hidden.Image, Passcode: hidden.Passcode})
	require.NoError(t, err)
	assert.Equal(t, "meet me at noon", revealed.Note.Message)
}

func TestStegoService_HideReveal_StampedNote(t *testing.T) {
	svc := newTestStegoService()
	ctx := context.Background()
	takenAt := time.Date(2025, 7, 14, 10, 30, 0, 0, time.Local)

	hidden, err := svc.Hide(ctx, models.HideRequest{
		Image:   gradient(64, 64),
		Message: "hello | world",
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
		TakenAt: takenAt,
	})
	require.NoError(t, err)

	revealed, err := svc.Reveal(ctx, models.RevealRequest{Image: hidden.Image, Passcode: "aB3c7D"})
	require.NoError(t, err)
	assert.Equal(t, "hello | world", revealed.Note.Message)
	assert.True(t, takenAt.Equal(revealed.Note.TakenAt))
}

func TestStegoService_Hide_DoesNotModifyCarrier(t *testing.T) {
	svc := newTestStegoService()
	carrier := gradient(20, 20)
	before := append([]uint8(nil), carrier.Pix...)

	_, err := svc.Hide(context.Background(), models.HideRequest{
		Image:   carrier,
		Message: "Hello",
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	require.NoError(t, err)
	assert.Equal(t, before, carrier.Pix)
}

func TestStegoService_Hide_CapacityExceeded(t *testing.T) {
	svc := newTestStegoService()

	_, err := svc.Hide(context.Background(), models.HideRequest{
		Image:   gradient(16, 16),
		Message: "Hello",
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	assert.ErrorIs(t, err, stego.ErrCapacity)
}

func TestStegoService_Hide_MalformedPasscode(t *testing.T) {
	svc := newTestStegoService()

	for _, code := range []string{"", "abc12", "abc1234", "ab c12", "ab-123"} {
		_, err := svc.Hide(context.Background(), models.HideRequest{
			Image:   gradient(17, 17),
			Message: "Hello",
			Mode:    models.UseExisting{Passcode: code},
		})
		assert.ErrorIs(t, err, passcode.ErrMalformedPasscode, code)
	}
}

func TestStegoService_Hide_UnknownMode(t *testing.T) {
	svc := newTestStegoService()

	_, err := svc.Hide(context.Background(), models.HideRequest{Image: gradient(17, 17), Message: "Hello"})
	assert.ErrorIs(t, err, ErrUnknownPasscodeMode)
}

func TestStegoService_Hide_NoImage(t *testing.T) {
	svc := newTestStegoService()

	_, err := svc.Hide(context.Background(), models.HideRequest{Message: "Hello", Mode: models.GenerateNew{}})
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestStegoService_Reveal_WrongPasscode(t *testing.T) {
	svc := newTestStegoService()
	ctx := context.Background()

	hidden, err := svc.Hide(ctx, models.HideRequest{
		Image:   gradient(17, 17),
		Message: "Hello",
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	require.NoError(t, err)

	_, err = svc.Reveal(ctx, models.RevealRequest{Image: hidden.Image, Passcode: "xY9z2Q"})
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestStegoService_Reveal_DifferentSalt(t *testing.T) {
	ctx := context.Background()
	sealer := newTestStegoService()
	opener := NewStegoService(config.App{Salt: "another_salt"}, logger.Nop())

	hidden, err := sealer.Hide(ctx, models.HideRequest{
		Image:   gradient(17, 17),
		Message: "Hello",
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	require.NoError(t, err)

	_, err = opener.Reveal(ctx, models.RevealRequest{Image: hidden.Image, Passcode: "aB3c7D"})
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestStegoService_Reveal_UntouchedCarrier(t *testing.T) {
	svc := newTestStegoService()

	_, err := svc.Reveal(context.Background(), models.RevealRequest{Image: gradient(17, 17), Passcode: "aB3c7D"})
	assert.ErrorIs(t, err, stego.ErrNoPayloadFound)
}

func TestStegoService_Reveal_MalformedPasscode(t *testing.T) {
	svc := newTestStegoService()

	_, err := svc.Reveal(context.Background(), models.RevealRequest{Image: gradient(17, 17), Passcode: "short"})
	assert.ErrorIs(t, err, passcode.ErrMalformedPasscode)
}

func TestStegoService_Capacity(t *testing.T) {
	svc := newTestStegoService()

	report, err := svc.Capacity(context.Background(), gradient(17, 17))
	require.NoError(t, err)

	assert.Equal(t, 17, report.Width)
	assert.Equal(t, 17, report.Height)
	assert.Equal(t, 867, report.CapacityBits)
	assert.Equal(t, (867-16)/8, report.MaxTokenBytes)
	assert.GreaterOrEqual(t, report.MaxMessageBytes, len("Hello"))
	assert.LessOrEqual(t, crypto.TokenSize(report.MaxMessageBytes), report.MaxTokenBytes)
}

func TestStegoService_Capacity_MaxMessageFits(t *testing.T) {
	svc := newTestStegoService()
	ctx := context.Background()
	carrier := gradient(30, 30)

	report, err := svc.Capacity(ctx, carrier)
	require.NoError(t, err)

	_, err = svc.Hide(ctx, models.HideRequest{
		Image:   carrier,
		Message: strings.Repeat("a", report.MaxMessageBytes),
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	require.NoError(t, err)

	_, err = svc.Hide(ctx, models.HideRequest{
		Image:   carrier,
		Message: strings.Repeat("a", report.MaxMessageBytes+1),
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	assert.ErrorIs(t, err, stego.ErrCapacity)
}

func TestStegoService_Capacity_TinyCarrier(t *testing.T) {
	svc := newTestStegoService()

	report, err := svc.Capacity(context.Background(), gradient(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 0, report.MaxMessageBytes)
	assert.Equal(t, 0, report.MaxStampedMessageBytes)
}

func TestStegoService_Capacity_MaxStampedMessageFits(t *testing.T) {
	svc := newTestStegoService()
	ctx := context.Background()
	carrier := gradient(30, 30)
	takenAt := time.Date(2025, 7, 14, 10, 30, 0, 0, time.Local)

	report, err := svc.Capacity(ctx, carrier)
	require.NoError(t, err)
	require.Equal(t, report.MaxMessageBytes-models.NoteStampOverhead, report.MaxStampedMessageBytes)

	_, err = svc.Hide(ctx, models.HideRequest{
		Image:   carrier,
		Message: strings.Repeat("a", report.MaxStampedMessageBytes),
		TakenAt: takenAt,
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	require.NoError(t, err)

	_, err = svc.Hide(ctx, models.HideRequest{
		Image:   carrier,
		Message: strings.Repeat("a", report.MaxStampedMessageBytes+1),
		TakenAt: takenAt,
		Mode:    models.UseExisting{Passcode: "aB3c7D"},
	})
	assert.ErrorIs(t, err, stego.ErrCapacity)
}

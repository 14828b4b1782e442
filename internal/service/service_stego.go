// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"image"

	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/passcode"
	"github.com/MKhiriev/go-secret-selfie/internal/stego"
	"github.com/MKhiriev/go-secret-selfie/models"
)

type stegoService struct {
	deriver  *crypto.KeyDeriver
	cipher   *crypto.Cipher
	generate func() (string, error)

	logger *logger.Logger
}

// StegoServiceOption customises a StegoService built by [NewStegoService].
type StegoServiceOption func(*stegoService)

// WithCipher replaces the default cipher, e.g. with one using a fixed clock.
func WithCipher(c *crypto.Cipher) StegoServiceOption {
	return func(s *stegoService) {
		s.cipher = c
	}
}

// WithPasscodeGenerator replaces [passcode.Generate].
func WithPasscodeGenerator(generate func() (string, error)) StegoServiceOption {
	return func(s *stegoService) {
		s.generate = generate
	}
}

func NewStegoService(cfg config.App, logger *logger.Logger, opts ...StegoServiceOption) StegoService {
	s := &stegoService{
		deriver:  crypto.NewKeyDeriver([]byte(cfg.Salt)),
		cipher:   crypto.NewCipher(),
		generate: passcode.Generate,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *stegoService) GeneratePasscode(ctx context.Context) (string, error) {
	code, err := s.generate()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "stegoService.GeneratePasscode").Msg("error generating passcode")
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	return code, nil
}

func (s *stegoService) Hide(ctx context.Context, req models.HideRequest) (models.HideResult, error) {
	log := logger.FromContext(ctx)

	if req.Image == nil {
		return models.HideResult{}, ErrNoImage
	}

	code, generated, err := s.resolvePasscode(ctx, req.Mode)
	if err != nil {
		return models.HideResult{}, err
	}

	carrier := stego.FromImage(req.Image)
	note := models.SecretNote{TakenAt: req.TakenAt, Message: req.Message}

	token, err := s.cipher.Encrypt(note.Encode(), s.deriver.Derive(code))
	if err != nil {
		log.Err(err).Str("func", "stegoService.Hide").Msg("error sealing message")
		return models.HideResult{}, fmt.Errorf("seal message: %w", err)
	}

	out, err := stego.Embed(carrier, token)
	if err != nil {
		log.Debug().Err(err).
			Str("func", "stegoService.Hide").
			Int("width", carrier.Width).
			Int("height", carrier.Height).
			Int("token_bytes", len(token)).
			Msg("payload does not fit into carrier")
		return models.HideResult{}, fmt.Errorf("embed token: %w", err)
	}

	result := models.HideResult{
		Image:        out.ToNRGBA(),
		PayloadBits:  stego.BitstreamLength(len(token)),
		CapacityBits: carrier.ByteCount(),
	}
	if generated {
		result.Passcode = code
	}

	log.Debug().
		Str("func", "stegoService.Hide").
		Int("payload_bits", result.PayloadBits).
		Int("capacity_bits", result.CapacityBits).
		Bool("generated_passcode", generated).
		Msg("message hidden")

	return result, nil
}

func (s *stegoService) resolvePasscode(ctx context.Context, mode models.PasscodeMode) (code string, generated bool, err error) {
	switch m := mode.(type) {
	case models.GenerateNew:
		code, err = s.GeneratePasscode(ctx)
		return code, true, err
	case models.UseExisting:
		if err = passcode.Validate(m.Passcode); err != nil {
			return "", false, err
		}
		return m.Passcode, false, nil
	default:
		return "", false, fmt.Errorf("%w: %T", ErrUnknownPasscodeMode, mode)
	}
}

func (s *stegoService) Reveal(ctx context.Context, req models.RevealRequest) (models.RevealResult, error) {
	log := logger.FromContext(ctx)

	if req.Image == nil {
		return models.RevealResult{}, ErrNoImage
	}
	if err := passcode.Validate(req.Passcode); err != nil {
		return models.RevealResult{}, err
	}

	token, err := stego.Extract(stego.FromImage(req.Image))
	if err != nil {
		log.Debug().Err(err).Str("func", "stegoService.Reveal").Msg("no payload in image")
		return models.RevealResult{}, fmt.Errorf("extract token: %w", err)
	}

	text, sealedAt, err := s.cipher.DecryptWithTime(token, s.deriver.Derive(req.Passcode))
	if err != nil {
		log.Debug().Err(err).Str("func", "stegoService.Reveal").Int("token_bytes", len(token)).Msg("token rejected")
		return models.RevealResult{}, fmt.Errorf("open token: %w", err)
	}

	return models.RevealResult{
		Note:     models.ParseSecretNote(text),
		SealedAt: sealedAt,
	}, nil
}

func (s *stegoService) Capacity(ctx context.Context, img image.Image) (models.CapacityReport, error) {
	if img == nil {
		return models.CapacityReport{}, ErrNoImage
	}

	b := img.Bounds()
	bits := b.Dx() * b.Dy() * stego.Channels
	maxToken := stego.MaxTokenLength(bits)
	maxMessage := max(crypto.MaxPlaintextSize(maxToken), 0)

	return models.CapacityReport{
		Width:                  b.Dx(),
		Height:                 b.Dy(),
		CapacityBits:           bits,
		MaxTokenBytes:          maxToken,
		MaxMessageBytes:        maxMessage,
		MaxStampedMessageBytes: max(maxMessage-models.NoteStampOverhead, 0),
	}, nil
}

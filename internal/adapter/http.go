package adapter

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-secret-selfie/internal/imaging"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
	"github.com/MKhiriev/go-secret-selfie/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// address may omit the scheme, in which case http:// is assumed. A zero
// timeout leaves requests bounded only by their context.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GeneratePasscode(ctx context.Context) (string, error) {
	var result models.PasscodeResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/passcode")
	if err != nil {
		return "", fmt.Errorf("passcode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Passcode, nil
}

func (h *httpServerAdapter) Hide(ctx context.Context, req models.HideRequest) (models.HideResult, error) {
	result, _, err := h.hide(ctx, req, false)
	return result, err
}

func (h *httpServerAdapter) HideAndPublish(ctx context.Context, req models.HideRequest) (models.HideResult, models.GalleryEntry, error) {
	return h.hide(ctx, req, true)
}

// hide uploads the carrier as PNG. The server stamps the note with its own
// clock, so only whether req.TakenAt is set is transmitted.
func (h *httpServerAdapter) hide(ctx context.Context, req models.HideRequest, publish bool) (models.HideResult, models.GalleryEntry, error) {
	if req.Image == nil {
		return models.HideResult{}, models.GalleryEntry{}, fmt.Errorf("%w: no image", ErrInvalidRequest)
	}

	body, err := encodePNG(req.Image)
	if err != nil {
		return models.HideResult{}, models.GalleryEntry{}, err
	}

	fields := map[string]string{
		"message": req.Message,
		"stamp":   strconv.FormatBool(!req.TakenAt.IsZero()),
		"publish": strconv.FormatBool(publish),
	}
	switch mode := req.Mode.(type) {
	case models.UseExisting:
		fields["passcode"] = mode.Passcode
	case models.GenerateNew, nil:
	default:
		return models.HideResult{}, models.GalleryEntry{}, fmt.Errorf("%w: unknown passcode mode %T", ErrInvalidRequest, mode)
	}

	resp, err := h.request(ctx).
		SetFileReader("image", "carrier.png", bytes.NewReader(body)).
		SetFormData(fields).
		Post("/api/stego/hide")
	if err != nil {
		return models.HideResult{}, models.GalleryEntry{}, fmt.Errorf("hide request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HideResult{}, models.GalleryEntry{}, err
	}

	img, _, err := imaging.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return models.HideResult{}, models.GalleryEntry{}, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	header := resp.Header()
	result := models.HideResult{
		Image:        toNRGBA(img),
		Passcode:     header.Get(models.HeaderPasscode),
		PayloadBits:  headerInt(header.Get(models.HeaderPayloadBits)),
		CapacityBits: headerInt(header.Get(models.HeaderCapacityBits)),
	}

	var entry models.GalleryEntry
	if publish {
		entry.DownloadToken = header.Get(models.HeaderDownloadToken)
		if expires := header.Get(models.HeaderGalleryExpires); expires != "" {
			if entry.ExpiresAt, err = time.Parse(time.RFC3339, expires); err != nil {
				h.logger.Warn().Err(err).Str("func", "httpServerAdapter.hide").Msg("unparseable gallery expiry")
			}
		}
	}

	return result, entry, nil
}

func (h *httpServerAdapter) Reveal(ctx context.Context, req models.RevealRequest) (models.RevealResult, error) {
	if req.Image == nil {
		return models.RevealResult{}, fmt.Errorf("%w: no image", ErrInvalidRequest)
	}

	body, err := encodePNG(req.Image)
	if err != nil {
		return models.RevealResult{}, err
	}

	var result models.RevealResponse
	resp, err := h.request(ctx).
		SetFileReader("image", "carrier.png", bytes.NewReader(body)).
		SetFormData(map[string]string{"passcode": req.Passcode}).
		SetResult(&result).
		Post("/api/stego/reveal")
	if err != nil {
		return models.RevealResult{}, fmt.Errorf("reveal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RevealResult{}, err
	}

	return result.RevealResult(), nil
}

func (h *httpServerAdapter) Capacity(ctx context.Context, img image.Image) (models.CapacityReport, error) {
	if img == nil {
		return models.CapacityReport{}, fmt.Errorf("%w: no image", ErrInvalidRequest)
	}

	body, err := encodePNG(img)
	if err != nil {
		return models.CapacityReport{}, err
	}

	var result models.CapacityResponse
	resp, err := h.request(ctx).
		SetFileReader("image", "carrier.png", bytes.NewReader(body)).
		SetResult(&result).
		Post("/api/stego/capacity")
	if err != nil {
		return models.CapacityReport{}, fmt.Errorf("capacity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CapacityReport{}, err
	}

	return result.CapacityReport(), nil
}

func (h *httpServerAdapter) Fetch(ctx context.Context, token string) ([]byte, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty download token", ErrInvalidRequest)
	}

	resp, err := h.request(ctx).
		SetPathParam("token", token).
		Get("/api/gallery/{token}")
	if err != nil {
		return nil, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// request starts a request bound to ctx that forwards the trace ID, if any.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(models.HeaderTraceID, traceID)
	}
	return req
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode carrier: %w", err)
	}
	return buf.Bytes(), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	n := image.NewNRGBA(img.Bounds())
	draw.Draw(n, n.Bounds(), img, img.Bounds().Min, draw.Src)
	return n
}

func headerInt(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}

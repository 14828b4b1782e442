package http

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/mock"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/models"
)

var fixedNow = time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC)

type testHandler struct {
	router  http.Handler
	stego   *mock.MockStegoService
	gallery *mock.MockGalleryService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.Server) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	th := &testHandler{
		stego:   mock.NewMockStegoService(ctrl),
		gallery: mock.NewMockGalleryService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		StegoService:   th.stego,
		GalleryService: th.gallery,
		AppInfoService: th.appInfo,
	}, cfg, logger.Nop())
	h.now = func() time.Time { return fixedNow }

	th.router = h.Init()
	return th
}

func defaultServerConfig() config.Server {
	return config.Server{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: 5 * time.Second,
		MaxUploadBytes: config.DefaultMaxUploadBytes,
	}
}

func (th *testHandler) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// multipartRequest builds a POST with the given fields; a nil imageData
// leaves out the image part.
func multipartRequest(t *testing.T, target string, imageData []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if imageData != nil {
		part, err := mw.CreateFormFile("image", "carrier.png")
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/internal/stego"
	"github.com/MKhiriev/go-secret-selfie/internal/store"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
	"github.com/MKhiriev/go-secret-selfie/models"
)

func TestWithGZip_CompressesJSON(t *testing.T) {
	payload := strings.Repeat(`{"message":"hello"}`, 100)
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Less(t, rec.Body.Len(), len(payload))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

func TestWithGZip_SkipsImages(t *testing.T) {
	pngData := []byte("\x89PNG\r\n\x1a\nfake")
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusCreated)
		w.Write(pngData)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, pngData, rec.Body.Bytes())
}

func TestWithGZip_NoAcceptEncoding(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("plain"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGZip_InflatesRequestBody(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte("compressed body"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "compressed body", got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestCompressible(t *testing.T) {
	assert.True(t, compressible("application/json"))
	assert.True(t, compressible("text/plain; charset=utf-8"))
	assert.False(t, compressible("image/png"))
	assert.False(t, compressible(""))
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	_, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = rw.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, rw.status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 5, rw.size)
	assert.Same(t, rec, rw.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, err := rw.Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.status)
}

func TestWithTraceID_StoresTraceIDInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var fromCtx string
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, _ = utils.GetTraceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(models.HeaderTraceID, "trace-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "trace-1", fromCtx)
}

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("ok"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/passcode", nil)
	req.Header.Set(models.HeaderTraceID, "trace-2")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, `"trace_id":"trace-2"`)
	assert.Contains(t, line, `"uri":"/api/passcode"`)
	assert.Contains(t, line, `"status":202`)
	assert.Contains(t, line, `"size":2`)
}

func TestMapError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, mapError(errors.New("boom")).status)
	assert.Equal(t, models.CodeInternal, mapError(errors.New("boom")).code)
	assert.Equal(t, http.StatusBadRequest, mapError(ErrMissingImage).status)
	assert.Equal(t, models.CodeUploadTooLarge, mapError(ErrUploadTooLarge).code)
}

func TestMapError_WrappedSentinelsFollowTableOrder(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errorMapping
	}{
		{
			name: "token and not found",
			err:  fmt.Errorf("%w: %w", service.ErrGalleryTokenInvalid, store.ErrImageNotFound),
			want: errorMapping{http.StatusUnauthorized, models.CodeInvalidToken},
		},
		{
			name: "not found and token",
			err:  fmt.Errorf("%w: %w", store.ErrImageNotFound, service.ErrGalleryTokenInvalid),
			want: errorMapping{http.StatusUnauthorized, models.CodeInvalidToken},
		},
		{
			name: "no payload and auth",
			err:  fmt.Errorf("%w: %w", stego.ErrNoPayloadFound, crypto.ErrAuthentication),
			want: errorMapping{http.StatusForbidden, models.CodeAuthenticationFailed},
		},
		{
			name: "upload and capacity",
			err:  errors.Join(ErrUploadTooLarge, stego.ErrCapacity),
			want: errorMapping{http.StatusRequestEntityTooLarge, models.CodeCapacityExceeded},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 50 {
				require.Equal(t, tt.want, mapError(tt.err))
			}
		})
	}
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-selfie/models"
)

func TestGetServerVersion(t *testing.T) {
	th := newTestHandler(t, defaultServerConfig())
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3-beta+build.42")
	th.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123"))

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3-beta+build.42", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "abc123", rec.Header().Get("X-Build-Commit"))
}

func TestGetServerVersion_NoCommit(t *testing.T) {
	th := newTestHandler(t, defaultServerConfig())
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	th.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{})

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Build-Commit"))
}

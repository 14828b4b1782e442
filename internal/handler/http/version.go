package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if commit := h.services.AppInfoService.GetBuildInfo(r.Context()).BuildCommit(); commit != "" {
		w.Header().Set("X-Build-Commit", commit)
	}
	w.Write([]byte(serverVersion))
}

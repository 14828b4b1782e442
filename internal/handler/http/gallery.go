package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secret-selfie/internal/imaging"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
)

func (h *Handler) fetchGalleryImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.services.GalleryService.Fetch(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", imaging.PNG.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(img.Size()))
	w.Header().Set("Cache-Control", "private, no-store")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(img.PNG); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "fetchGalleryImage").Msg("error writing gallery image")
	}
}

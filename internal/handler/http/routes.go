package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Get("/api/passcode", h.generatePasscode)
		r.Get("/api/gallery/{token}", h.fetchGalleryImage)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes receiving images
	router.Group(func(r chi.Router) {
		r.Use(h.withUploadLimit)

		r.Post("/api/stego/hide", h.hide)
		r.Post("/api/stego/reveal", h.reveal)
		r.Post("/api/stego/capacity", h.capacity)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

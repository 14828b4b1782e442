// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secret-selfie/internal/utils"
	"github.com/MKhiriev/go-secret-selfie/models"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler. A
// known path requested with a method it does not serve is answered with
// 404 and the usual JSON error body instead of chi's 405, so callers cannot
// probe which methods exist.
//
// Only exact route patterns are looked up; parameterised routes such as
// /api/gallery/{token} always fall through to 404.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, http.StatusNotFound, models.CodeNotFound, "route not found")
	}
}

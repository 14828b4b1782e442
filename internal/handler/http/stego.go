// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-secret-selfie/internal/imaging"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
	"github.com/MKhiriev/go-secret-selfie/models"
)

func (h *Handler) generatePasscode(w http.ResponseWriter, r *http.Request) {
	code, err := h.services.StegoService.GeneratePasscode(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PasscodeResponse{Passcode: code}, http.StatusOK)
}

// hide accepts multipart fields:
//
//	image     carrier file (required)
//	message   secret text (required)
//	passcode  existing passcode; a new one is generated when empty
//	stamp     seal the current date and time along with the message
//	publish   store the result in the gallery
//	format    png (default), bmp or tiff
func (h *Handler) hide(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := parseUpload(r); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req, format, publish, err := h.parseHideRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.StegoService.Hide(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, result.Image, format); err != nil {
		writeError(w, r, err)
		return
	}

	header := w.Header()
	if publish {
		entry, err := h.services.GalleryService.Publish(r.Context(), result.Image)
		if err != nil {
			writeError(w, r, err)
			return
		}
		header.Set(models.HeaderDownloadToken, entry.DownloadToken)
		header.Set(models.HeaderGalleryExpires, entry.ExpiresAt.UTC().Format(time.RFC3339))
	}

	if result.Passcode != "" {
		header.Set(models.HeaderPasscode, result.Passcode)
	}
	header.Set(models.HeaderPayloadBits, strconv.Itoa(result.PayloadBits))
	header.Set(models.HeaderCapacityBits, strconv.Itoa(result.CapacityBits))
	header.Set("Content-Type", format.ContentType())
	header.Set("Content-Disposition", `attachment; filename="secret`+format.Extension()+`"`)
	header.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusCreated)

	if _, err = w.Write(buf.Bytes()); err != nil {
		log.Err(err).Str("func", "hide").Msg("error writing stego image")
	}
}

func (h *Handler) parseHideRequest(r *http.Request) (models.HideRequest, imaging.Format, bool, error) {
	img, _, err := formImage(r)
	if err != nil {
		return models.HideRequest{}, "", false, err
	}

	message := r.FormValue("message")
	if strings.TrimSpace(message) == "" {
		return models.HideRequest{}, "", false, ErrEmptyMessage
	}

	stamp, err := formBool(r, "stamp")
	if err != nil {
		return models.HideRequest{}, "", false, err
	}
	publish, err := formBool(r, "publish")
	if err != nil {
		return models.HideRequest{}, "", false, err
	}

	format := imaging.PNG
	if raw := r.FormValue("format"); raw != "" {
		if format, err = imaging.ParseFormat(raw); err != nil {
			return models.HideRequest{}, "", false, err
		}
		if !format.Lossless() {
			return models.HideRequest{}, "", false, imaging.ErrLossyFormat
		}
	}

	req := models.HideRequest{
		Image:   img,
		Message: message,
		Mode:    models.GenerateNew{},
	}
	if code := r.FormValue("passcode"); code != "" {
		req.Mode = models.UseExisting{Passcode: code}
	}
	if stamp {
		req.TakenAt = h.now()
	}

	return req, format, publish, nil
}

func (h *Handler) reveal(w http.ResponseWriter, r *http.Request) {
	if err := parseUpload(r); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	img, _, err := formImage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.StegoService.Reveal(r.Context(), models.RevealRequest{
		Image:    img,
		Passcode: r.FormValue("passcode"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, models.NewRevealResponse(result), http.StatusOK)
}

func (h *Handler) capacity(w http.ResponseWriter, r *http.Request) {
	if err := parseUpload(r); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	img, _, err := formImage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.services.StegoService.Capacity(r.Context(), img)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewCapacityResponse(report), http.StatusOK)
}

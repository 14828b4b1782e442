package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
	"github.com/MKhiriev/go-secret-selfie/internal/imaging"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/passcode"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/internal/stego"
	"github.com/MKhiriev/go-secret-selfie/internal/store"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
	"github.com/MKhiriev/go-secret-selfie/models"
)

type errorMapping struct {
	status int
	code   string
}

// errorMappings is checked in order; the first target err wraps decides the
// answer.
var errorMappings = []struct {
	target  error
	mapping errorMapping
}{
	{passcode.ErrMalformedPasscode, errorMapping{http.StatusBadRequest, models.CodeMalformedPasscode}},
	{stego.ErrCapacity, errorMapping{http.StatusRequestEntityTooLarge, models.CodeCapacityExceeded}},
	{crypto.ErrAuthentication, errorMapping{http.StatusForbidden, models.CodeAuthenticationFailed}},
	{stego.ErrNoPayloadFound, errorMapping{http.StatusUnprocessableEntity, models.CodeNoPayloadFound}},

	{stego.ErrInvalidImage, errorMapping{http.StatusUnsupportedMediaType, models.CodeUnsupportedImage}},
	{imaging.ErrDecode, errorMapping{http.StatusUnsupportedMediaType, models.CodeUnsupportedImage}},
	{imaging.ErrUnsupportedFormat, errorMapping{http.StatusUnsupportedMediaType, models.CodeUnsupportedImage}},
	{imaging.ErrLossyFormat, errorMapping{http.StatusUnsupportedMediaType, models.CodeUnsupportedImage}},

	{service.ErrNoImage, errorMapping{http.StatusBadRequest, models.CodeInvalidRequest}},
	{service.ErrUnknownPasscodeMode, errorMapping{http.StatusBadRequest, models.CodeInvalidRequest}},
	{ErrMissingImage, errorMapping{http.StatusBadRequest, models.CodeInvalidRequest}},
	{ErrEmptyMessage, errorMapping{http.StatusBadRequest, models.CodeInvalidRequest}},
	{ErrInvalidForm, errorMapping{http.StatusBadRequest, models.CodeInvalidRequest}},
	{ErrInvalidFlag, errorMapping{http.StatusBadRequest, models.CodeInvalidRequest}},
	{ErrUploadTooLarge, errorMapping{http.StatusRequestEntityTooLarge, models.CodeUploadTooLarge}},

	{service.ErrGalleryTokenInvalid, errorMapping{http.StatusUnauthorized, models.CodeInvalidToken}},
	{service.ErrGalleryDisabled, errorMapping{http.StatusNotImplemented, models.CodeGalleryDisabled}},
	{store.ErrImageNotFound, errorMapping{http.StatusNotFound, models.CodeNotFound}},
}

func mapError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.mapping
		}
	}
	return errorMapping{http.StatusInternalServerError, models.CodeInternal}
}

// writeError answers with the status and code mapped from err. Internal
// errors are logged and their text is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapping := mapError(err)

	message := err.Error()
	if mapping.status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("internal error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteError(w, mapping.status, mapping.code, message)
}

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
	"github.com/MKhiriev/go-secret-selfie/internal/passcode"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/internal/stego"
	"github.com/MKhiriev/go-secret-selfie/models"
)

var errorCodeMap = map[string]error{
	models.CodeMalformedPasscode:    passcode.ErrMalformedPasscode,
	models.CodeCapacityExceeded:     stego.ErrCapacity,
	models.CodeAuthenticationFailed: crypto.ErrAuthentication,
	models.CodeNoPayloadFound:       stego.ErrNoPayloadFound,
	models.CodeUnsupportedImage:     ErrUnsupportedImage,
	models.CodeInvalidRequest:       ErrInvalidRequest,
	models.CodeUploadTooLarge:       ErrUploadTooLarge,
	models.CodeInvalidToken:         service.ErrGalleryTokenInvalid,
	models.CodeGalleryDisabled:      service.ErrGalleryDisabled,
	models.CodeNotFound:             ErrNotFound,
	models.CodeInternal:             ErrServer,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it decodes the
// ErrorResponse body and wraps the sentinel matching its code. Responses
// without a known code fall back to the status.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if sentinel, ok := errorCodeMap[body.Error]; ok {
			if body.Message == "" {
				return sentinel
			}
			return fmt.Errorf("%w: %s", sentinel, body.Message)
		}
	}

	text := strings.TrimSpace(string(resp.Body()))
	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, text)
	case resp.StatusCode() == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrUploadTooLarge, text)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), text)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), text)
	}
}

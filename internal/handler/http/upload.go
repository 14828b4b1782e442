package http

import (
	"errors"
	"image"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-secret-selfie/internal/imaging"
)

// multipartMemory is how much of a multipart body is kept in memory; the
// rest spills to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) withUploadLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// parseUpload parses the multipart body. The caller must defer
// r.MultipartForm.RemoveAll() on success.
func parseUpload(r *http.Request) error {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrUploadTooLarge
		}
		return errors.Join(ErrInvalidForm, err)
	}
	return nil
}

// formImage decodes the "image" part of a parsed multipart form.
func formImage(r *http.Request) (image.Image, imaging.Format, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, "", ErrMissingImage
	}
	defer file.Close()

	return imaging.Decode(file)
}

// formBool reads an optional boolean field; absent means false.
func formBool(r *http.Request, name string) (bool, error) {
	raw := r.FormValue(name)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Join(ErrInvalidFlag, err)
	}
	return v, nil
}

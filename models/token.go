package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DownloadToken wraps a signed JWT that grants access to one gallery image.
//
// The "sub" claim holds the image ID and "exp" the moment the image is
// purged. ImageID caches the parsed subject.
type DownloadToken struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form handed to clients.
	SignedString string `json:"-"`

	ImageID uuid.UUID `json:"-"`
}

// GetImageID parses the subject claim as a UUID.
func (t *DownloadToken) GetImageID() (uuid.UUID, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting image ID from token: %w", err)
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error parsing image ID from token: %w", err)
	}

	return id, nil
}

// String returns the compact JWS serialization of the token.
func (t *DownloadToken) String() string {
	return t.SignedString
}

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-selfie/models"
)

// GenerateDownloadToken creates a signed HMAC-SHA256 JWT that grants access
// to one gallery image.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the gallery image ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): expiresAt, the moment the image is purged
//
// Example usage:
//
//	token, err := utils.GenerateDownloadToken("go-secret-selfie", id, time.Now().Add(time.Hour), "secret")
func GenerateDownloadToken(issuer string, imageID uuid.UUID, expiresAt time.Time, signKey string) (models.DownloadToken, error) {
	if issuer == "" || imageID == uuid.Nil || expiresAt.IsZero() || signKey == "" {
		return models.DownloadToken{}, errors.New("invalid params for generating download token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   imageID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.DownloadToken{}, fmt.Errorf("error occurred during singing download token: %w", err)
	}

	return models.DownloadToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		ImageID:          imageID,
	}, nil
}

// ValidateAndParseDownloadToken verifies the signature, issuer and expiry of
// tokenString and extracts the image ID from its subject.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseDownloadToken(raw, "secret", "go-secret-selfie")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseDownloadToken(tokenString, tokenSignKey, tokenIssuer string) (models.DownloadToken, error) {
	parsed := &models.DownloadToken{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.DownloadToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString

	imageID, err := parsed.GetImageID()
	if err != nil {
		return models.DownloadToken{}, err
	}
	parsed.ImageID = imageID

	return *parsed, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is a published stego image as stored on the server. It never
// carries a passcode or key.
type GalleryImage struct {
	ID        uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
	Width     int
	Height    int
	PNG       []byte
}

// Size returns the encoded image length in bytes.
func (g GalleryImage) Size() int {
	return len(g.PNG)
}

// GalleryEntry is returned by a publish: where the image lives and the token
// needed to download it.
type GalleryEntry struct {
	ID            uuid.UUID
	ExpiresAt     time.Time
	DownloadToken string
}

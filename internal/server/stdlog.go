package server

import (
	"log"

	"github.com/MKhiriev/go-secret-selfie/internal/logger"
)

// newStdLogger routes net/http's internal error log through zerolog.
func newStdLogger(l *logger.Logger) *log.Logger {
	return log.New(l.With().Str("component", "net/http").Logger(), "", 0)
}

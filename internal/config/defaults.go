package config

import (
	"time"

	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
)

const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultMaxUploadBytes  = 32 << 20
	DefaultTokenIssuer     = "go-secret-selfie"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultCleanupInterval = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Salt:          crypto.DefaultSalt,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
		Workers: Workers{
			CleanupInterval: DefaultCleanupInterval,
		},
	}
}

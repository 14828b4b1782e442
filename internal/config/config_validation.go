// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] before it is used at startup.
// Gallery settings are only required when a database DSN is configured.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Salt == "" {
		return fmt.Errorf("%w: empty salt", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: max upload bytes must be positive", ErrInvalidServerConfigs)
	}

	if !cfg.GalleryEnabled() {
		return nil
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: gallery requires token sign key, issuer and duration", ErrInvalidAppConfigs)
	}
	if cfg.Workers.CleanupInterval <= 0 {
		return fmt.Errorf("%w: cleanup interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

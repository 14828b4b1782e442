// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/go-secret-selfie/internal/adapter"

// Backend executes the stego operations. The server adapter satisfies it
// directly; [NewLocalBackend] wraps the in-process services.
type Backend = adapter.ServerAdapter

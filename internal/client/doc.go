// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the commands of the secret-selfie CLI.
//
// An [App] runs every command against a [Backend]: either the local stego
// pipeline ([NewLocalBackend]) or a remote server reached through the HTTP
// adapter. Image files are read and written here; the cmd/client binary only
// parses arguments and prompts for secrets.
package client

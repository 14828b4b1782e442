// Package config provides configuration loading, merging, and validation
// for the secret-selfie server.
//
// Configuration is assembled from several sources. For every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultHTTPAddress is the loopback address the backend listens on when
	// no address is configured.
	DefaultHTTPAddress = "127.0.0.1:8000"

	// DefaultShutdownTimeout bounds how long in-flight requests may take to
	// finish once a stop signal has been received.
	DefaultShutdownTimeout = 5 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// hello-backend application. It is populated by merging built-in defaults
// with values read from environment variables.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadHeaderTimeout is the amount of time allowed to read request
	// headers. Zero means no timeout.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout is the maximum duration the server waits for active
	// connections to finish during graceful shutdown (e.g. "5s").
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// defaultConfig returns the configuration used when nothing is overridden.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		build()
}

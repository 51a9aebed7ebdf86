package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an address without a port or a non-positive shutdown
	// timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

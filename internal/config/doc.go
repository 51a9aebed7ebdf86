// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (loopback address 127.0.0.1:8000)
//  2. Environment variables
//
// The main entry point is [GetStructuredConfig].
package config

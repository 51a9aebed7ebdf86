// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// Startup failure kinds. Every error returned by [Server.Run] wraps exactly
// one of them together with the low-level cause, so both can be matched
// with errors.Is.
var (
	// ErrBindTCPListener means the listen socket could not be created or bound.
	ErrBindTCPListener = errors.New("could not bind to network interface")

	// ErrGetListenerAddress means the local address of the bound socket could
	// not be resolved.
	ErrGetListenerAddress = errors.New("could not get TCP listener address")

	// ErrServeApp means the accept/serve loop terminated with an error.
	ErrServeApp = errors.New("could not start HTTP server")
)

var errNoListenerAddress = errors.New("listener has no local address")

// StartupError is the failure result of a server run.
type StartupError struct {
	kind error
	// Err is the I/O failure that produced this error.
	Err error
}

func newStartupError(kind, cause error) *StartupError {
	return &StartupError{kind: kind, Err: cause}
}

// Kind returns the sentinel naming the failed step.
func (e *StartupError) Kind() error {
	return e.kind
}

func (e *StartupError) Error() string {
	return e.kind.Error() + ": " + e.Err.Error()
}

func (e *StartupError) Unwrap() []error {
	return []error{e.kind, e.Err}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// hello-backend handlers, server and entry point.
//
// Keeping response bodies and log messages in one place ensures consistent
// wording between the code that emits them and the tests that assert on them.
package app

const (
	// MsgHelloWorld is the exact body returned by GET /api/hello.
	// It carries no trailing newline.
	MsgHelloWorld = "Hello, world!"

	// MsgListening prefixes the startup line that reports the bound address.
	MsgListening = "backend listening on"

	// MsgExitedSuccessfully prefixes the terminal line of a clean run.
	MsgExitedSuccessfully = "app exited successfully"

	// MsgExitedDueToError prefixes the terminal line of a failed run.
	MsgExitedDueToError = "app exited due to error"

	// MsgRequestStarted is the span line written when a request arrives.
	MsgRequestStarted = "started processing request"

	// MsgRequestFinished is the response line written after the handler returns.
	MsgRequestFinished = "finished processing request"
)

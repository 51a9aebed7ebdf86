// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"

	"github.com/MKhiriev/hello-backend/internal/app"
	"github.com/MKhiriev/hello-backend/internal/logger"
)

// Outcome is the success result of a server run.
type Outcome int

const (
	outcomeNone Outcome = iota

	// Completed means the serve loop returned without error, which happens
	// only after a graceful shutdown.
	Completed
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "all operations completed"
	default:
		return "no outcome"
	}
}

// Process exit codes, one per outcome.
const (
	ExitOK                 = 0
	ExitFailure            = 1
	ExitBindTCPListener    = 2
	ExitGetListenerAddress = 3
	ExitServeApp           = 4
)

// ExitCode maps the error returned by [Server.Run] to a process exit code.
// A nil error maps to [ExitOK]; errors outside the startup taxonomy map to
// [ExitFailure].
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrBindTCPListener):
		return ExitBindTCPListener
	case errors.Is(err, ErrGetListenerAddress):
		return ExitGetListenerAddress
	case errors.Is(err, ErrServeApp):
		return ExitServeApp
	default:
		return ExitFailure
	}
}

// LogOutcome writes the single terminal log line of a run and returns the
// exit code the process should end with.
func LogOutcome(log *logger.Logger, outcome Outcome, err error) int {
	if err != nil {
		log.Error().Msgf("%s: %v", app.MsgExitedDueToError, err)
		return ExitCode(err)
	}

	log.Info().Msgf("%s: %s", app.MsgExitedSuccessfully, outcome)
	return ExitOK
}

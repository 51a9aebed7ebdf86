package http

import (
	"github.com/MKhiriev/hello-backend/internal/logger"
	"github.com/MKhiriev/hello-backend/internal/utils"
)

// traceIDGenerator produces identifiers for requests that arrive without an
// X-Trace-ID header.
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	traceIDs traceIDGenerator

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

package server

import (
	"context"
	"errors"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/hello-backend/internal/config"
	"github.com/MKhiriev/hello-backend/internal/logger"
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ErrorLog:          stdErrorLog(logger),
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// run serves on listener until the serve loop fails or ctx is cancelled.
// Cancellation triggers a graceful shutdown bounded by shutdownTimeout.
func (h *httpServer) run(ctx context.Context, listener net.Listener) (Outcome, error) {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return Completed, nil
		}
		return outcomeNone, newStartupError(ErrServeApp, err)
	case <-ctx.Done():
	}

	h.logger.Info().Msg("HTTP server Shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return outcomeNone, newStartupError(ErrServeApp, err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return outcomeNone, newStartupError(ErrServeApp, err)
	}

	return Completed, nil
}

// stdErrorLog routes net/http's internal error messages through the
// application logger.
func stdErrorLog(l *logger.Logger) *stdlog.Logger {
	return stdlog.New(l.With().Str("component", "net/http").Logger(), "", 0)
}

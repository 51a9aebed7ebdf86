package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/hello-backend/internal/app"
	"github.com/MKhiriev/hello-backend/internal/logger"
)

// withLogging writes the response line of a request span once the wrapped
// handler returns. It uses the request-scoped logger set up by withTraceID.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Int("status", lw.statusCode()).
			Dur("duration", duration).
			Int("size", lw.size).
			Msg(app.MsgRequestFinished)
	})
}

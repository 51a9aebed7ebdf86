package http

import (
	"net/http"

	"github.com/MKhiriev/hello-backend/internal/app"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID opens a request span: it attaches a request-scoped logger
// carrying the trace ID to the context and writes the span line before the
// request is passed on. The trace ID is not echoed back to the client.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var traceID string
		if traceIDFromRequestHeader := r.Header.Get(traceIDHeader); traceIDFromRequestHeader != "" {
			traceID = traceIDFromRequestHeader
		} else {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("proto", r.Proto)
		})
		r = r.WithContext(l.WithContext(ctx))

		l.Info().Msg(app.MsgRequestStarted)
		next.ServeHTTP(w, r)
	})
}

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// withLogging emits one structured log line per request: uri, method,
// status, duration and response size. The logger comes from the request
// context, so the line inherits the trace id set by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

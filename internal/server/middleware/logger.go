// Package middleware holds the HTTP middleware shared by the API routes.
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/equipment-cost/internal/estimate"
)

// TraceHeader carries the request trace ID in responses.
const TraceHeader = "X-Trace-Id"

// Logger attaches a request-scoped logger and trace ID to the context and logs
// each completed request.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			traceID := req.Header.Get(TraceHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr).
				Str(estimate.FieldTraceID, traceID).
				Logger()

			ctx := reqLogger.WithContext(req.Context())
			ctx = estimate.WithTraceID(ctx, traceID)
			req = req.WithContext(ctx)

			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			ww.Header().Set(TraceHeader, traceID)
			next.ServeHTTP(ww, req)

			reqLogger.Info().
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Int64(estimate.FieldDurationMs, time.Since(start).Milliseconds()).
				Msg("request completed")
		})
	}
}

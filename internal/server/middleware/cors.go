package middleware

import (
	"net/http"
	"slices"
)

// CORS sets Access-Control headers for allowed origins and answers preflight
// requests. With no origins configured it is a pass-through.
func CORS(origins []string, allowAll bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !allowAll && len(origins) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			origin := req.Header.Get("Origin")
			if origin != "" && (allowAll || slices.Contains(origins, origin)) {
				h := w.Header()
				if allowAll {
					h.Set("Access-Control-Allow-Origin", "*")
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, "+TraceHeader)
				h.Set("Access-Control-Expose-Headers", TraceHeader)
			}
			if req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

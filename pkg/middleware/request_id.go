// Package middleware provides the HTTP middleware shared by the API server.
package middleware

import (
	"net/http"

	"github.com/rackops/rackprep/pkg/requestid"
)

// RequestID reads the request ID from the x-request-id header or generates a
// fresh one, and injects it into the request context so handlers and the
// request logger can correlate their output.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("x-request-id")
		if requestID == "" {
			requestID = requestid.Generate()
		}

		ctx := requestid.ToContext(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

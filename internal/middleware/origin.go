package middleware

import (
	"encoding/json"
	"net/http"

	"wellness-chat-backend/internal/models"
)

const (
	allowedMethods = "GET, POST, OPTIONS"
	allowedHeaders = "Content-Type"
)

// OriginGuard rejects any request whose Origin header is not exactly
// allowedOrigin. Accepted responses carry Access-Control-Allow-Origin.
// Preflight requests from the allowed origin are answered here with 204.
func OriginGuard(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Origin") != allowedOrigin || allowedOrigin == "" {
				writeError(w, http.StatusForbidden, "Forbidden origin")
				return
			}

			// Set before next runs: headers are frozen on the first WriteHeader.
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}

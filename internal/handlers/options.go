package handlers

import "net/http"

// Options answers a plain OPTIONS request. CORS preflights are handled by
// the origin guard before they reach here.
func Options(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, POST, OPTIONS")
	w.WriteHeader(http.StatusNoContent)
}

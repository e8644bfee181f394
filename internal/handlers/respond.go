package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wellness-chat-backend/internal/models"
	"wellness-chat-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

func handleServiceError(w http.ResponseWriter, err error) {
	var (
		cfgErr      *services.ConfigurationError
		validErr    *services.ValidationError
		policyErr   *services.PolicyError
		upstreamErr *services.UpstreamError
	)
	switch {
	case errors.As(err, &cfgErr):
		writeJSON(w, http.StatusInternalServerError, errorResp(cfgErr.Message))
	case errors.As(err, &validErr):
		writeJSON(w, http.StatusBadRequest, errorResp(validErr.Message))
	case errors.As(err, &policyErr):
		writeJSON(w, http.StatusBadRequest, errorResp(policyErr.Message))
	case errors.As(err, &upstreamErr):
		writeJSON(w, http.StatusInternalServerError, errorResp(upstreamErr.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("An unexpected error occurred"))
	}
}

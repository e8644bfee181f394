package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"wellness-chat-backend/internal/models"
	"wellness-chat-backend/internal/services"
)

const msgMessageRequired = "Invalid request, 'message' field is required"

type chatService interface {
	CheckConfigured() error
	Reply(ctx context.Context, message string) (string, error)
}

type ChatHandler struct {
	chatService chatService
}

func NewChatHandler(chatService chatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	// Key check comes before body validation.
	if err := h.chatService.CheckConfigured(); err != nil {
		handleServiceError(w, err)
		return
	}

	req, ok := decodeChatRequest(r.Body)
	if !ok {
		handleServiceError(w, &services.ValidationError{Message: msgMessageRequired})
		return
	}

	reply, err := h.chatService.Reply(r.Context(), *req.Message)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}

// decodeChatRequest accepts exactly one JSON object carrying a string
// message. Anything after that object makes the body invalid.
func decodeChatRequest(body io.Reader) (models.ChatRequest, bool) {
	var req models.ChatRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil || req.Message == nil {
		return req, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return req, false
	}
	return req, true
}

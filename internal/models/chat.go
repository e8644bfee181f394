package models

// ChatRequest is the payload sent to the chat endpoint. Message is a pointer
// so a missing or null field can be told apart from an empty string.
type ChatRequest struct {
	Message *string `json:"message"`
}

// ChatResponse carries the model's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

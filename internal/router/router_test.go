package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wellness-chat-backend/internal/config"
	"wellness-chat-backend/internal/filter"
	"wellness-chat-backend/internal/handlers"
	"wellness-chat-backend/internal/services"
)

const testOrigin = "https://your-frontend-url.com"

type stubCompleter struct {
	calls        int
	systemPrompt string
	userMessage  string
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	s.calls++
	s.systemPrompt = systemPrompt
	s.userMessage = userMessage
	return "Mocked wellness reply", nil
}

func newTestRouter(completer services.Completer) http.Handler {
	cfg := &config.Config{
		AllowedOrigin: testOrigin,
		SystemPrompt:  config.SystemPrompt,
	}
	topics := filter.NewTopicFilter(
		[]string{"violence", "hate speech", "illegal activities", "explicit content", "self-harm", "political campaigning", "sensitive personal information"},
		[]string{"fitness routines", "healthy eating habits", "mental health tips", "stress management", "wellness strategies"},
	)
	chatService := services.NewChatService(completer, topics, cfg.SystemPrompt, "OpenAI")
	return New(handlers.NewChatHandler(chatService), cfg.AllowedOrigin)
}

func do(t *testing.T, h http.Handler, method, path, origin, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var decoded map[string]string
	if rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
		}
	}
	return rr, decoded
}

func TestRouter_ForbiddenOrigin(t *testing.T) {
	h := newTestRouter(&stubCompleter{})

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/chat"},
	} {
		t.Run(route.path, func(t *testing.T) {
			rr, body := do(t, h, route.method, route.path, "https://other.example.com", `{"message":"fitness routines"}`)

			if rr.Code != http.StatusForbidden {
				t.Fatalf("expected status %d, got %d", http.StatusForbidden, rr.Code)
			}
			if body["error"] != "Forbidden origin" {
				t.Errorf("unexpected error %q", body["error"])
			}
		})
	}
}

func TestRouter_Health(t *testing.T) {
	rr, body := do(t, newTestRouter(nil), http.MethodGet, "/health", testOrigin, "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if body["status"] != "healthy" {
		t.Errorf("unexpected status %q", body["status"])
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != testOrigin {
		t.Errorf("missing allow-origin header")
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Errorf("missing request id header")
	}
}

func TestRouter_Chat(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantKey    string
		wantValue  string
	}{
		{"empty object", `{}`, http.StatusBadRequest, "error", "Invalid request, 'message' field is required"},
		{"trailing garbage", `{"message":"fitness routines"} not json at all`, http.StatusBadRequest, "error", "Invalid request, 'message' field is required"},
		{"prohibited", `{"message":"I want to talk about violence"}`, http.StatusBadRequest, "error", services.MsgProhibitedTopic},
		{"prohibited upper case", `{"message":"VIOLENCE now"}`, http.StatusBadRequest, "error", services.MsgProhibitedTopic},
		{"prohibited beats expected", `{"message":"fitness routines and violence"}`, http.StatusBadRequest, "error", services.MsgProhibitedTopic},
		{"off topic", `{"message":"tell me a joke"}`, http.StatusBadRequest, "error", services.MsgOffTopic},
		{"accepted", `{"message":"give me fitness routines tips"}`, http.StatusOK, "response", "Mocked wellness reply"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr, body := do(t, newTestRouter(&stubCompleter{}), http.MethodPost, "/chat", testOrigin, tc.body)

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if body[tc.wantKey] != tc.wantValue {
				t.Errorf("expected %s %q, got %q", tc.wantKey, tc.wantValue, body[tc.wantKey])
			}
			if rr.Header().Get("Access-Control-Allow-Origin") != testOrigin {
				t.Errorf("missing allow-origin header on %d response", rr.Code)
			}
		})
	}
}

func TestRouter_ChatRelaysExactTurns(t *testing.T) {
	stub := &stubCompleter{}
	do(t, newTestRouter(stub), http.MethodPost, "/chat", testOrigin, `{"message":"give me fitness routines tips"}`)

	if stub.calls != 1 {
		t.Fatalf("expected 1 completion call, got %d", stub.calls)
	}
	if stub.systemPrompt != config.SystemPrompt {
		t.Errorf("unexpected system prompt %q", stub.systemPrompt)
	}
	if stub.userMessage != "give me fitness routines tips" {
		t.Errorf("unexpected user message %q", stub.userMessage)
	}
}

func TestRouter_ChatWithoutKey(t *testing.T) {
	rr, body := do(t, newTestRouter(nil), http.MethodPost, "/chat", testOrigin, `{"message":"give me fitness routines tips"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if body["error"] != "OpenAI API key not configured" {
		t.Errorf("unexpected error %q", body["error"])
	}
}

func TestRouter_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	newTestRouter(nil).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}

func TestRouter_UnknownPathIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{"no origin", ""},
		{"allowed origin", testOrigin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/nope", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()

			newTestRouter(nil).ServeHTTP(rr, req)

			if rr.Code != http.StatusNotFound {
				t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
			}
			if rr.Header().Get("Access-Control-Allow-Origin") != "" {
				t.Error("unknown paths must not carry Access-Control-Allow-Origin")
			}
		})
	}
}

func TestRouter_PlainOptions(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", testOrigin)
	rr := httptest.NewRecorder()

	newTestRouter(nil).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if rr.Header().Get("Allow") != "GET, POST, OPTIONS" {
		t.Errorf("unexpected Allow header %q", rr.Header().Get("Allow"))
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != testOrigin {
		t.Errorf("missing allow-origin header")
	}
}

func TestRouter_PreflightFromOtherOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "https://other.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	newTestRouter(nil).ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

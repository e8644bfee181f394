package services

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// Completer sends one system turn and one user turn to a chat model and
// returns the generated text. Failures are *UpstreamError.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService builds a chat-completion client. baseURL may be empty to
// use the public OpenAI endpoint.
func NewOpenAIService(apiKey, model, baseURL string) *OpenAIService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", &UpstreamError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Provider: "openai", Err: errors.New("no choices in completion response")}
	}

	return resp.Choices[0].Message.Content, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type generateFunc func(ctx context.Context, model *genai.GenerativeModel, parts ...genai.Part) (*genai.GenerateContentResponse, error)

type GeminiService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	generate generateFunc
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:   client,
		model:    client.GenerativeModel(modelName),
		generate: generateContent,
	}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Complete sends the system prompt as the model's system instruction and the
// user message as the single content turn.
func (s *GeminiService) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	// Copy so concurrent requests never share a mutated model.
	model := *s.model
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))

	resp, err := s.generate(ctx, &model, genai.Text(userMessage))
	if err != nil {
		return "", &UpstreamError{Provider: "gemini", Err: err}
	}

	if resp != nil {
		for i, cand := range resp.Candidates {
			if cand.FinishReason != genai.FinishReasonStop {
				log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
			}
		}
	}

	text := extractText(resp)
	if text == "" {
		return "", &UpstreamError{Provider: "gemini", Err: errors.New("Gemini returned no text")}
	}
	return text, nil
}

func generateContent(ctx context.Context, model *genai.GenerativeModel, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	return model.GenerateContent(ctx, parts...)
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

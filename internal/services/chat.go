package services

import (
	"context"
	"fmt"
	"log"

	"wellness-chat-backend/internal/filter"
)

const (
	MsgProhibitedTopic = "Your message contains prohibited topics. Please follow the usage guidelines."
	MsgOffTopic        = "Your message does not align with the chatbot's expected topics. Please ask about fitness, nutrition, mental health, or wellness strategies."
)

// ChatService applies the topic policy and relays accepted messages to the
// completion provider. A nil completer means the API key never loaded.
type ChatService struct {
	completer    Completer
	topics       *filter.TopicFilter
	systemPrompt string
	providerName string
}

func NewChatService(completer Completer, topics *filter.TopicFilter, systemPrompt, providerName string) *ChatService {
	return &ChatService{
		completer:    completer,
		topics:       topics,
		systemPrompt: systemPrompt,
		providerName: providerName,
	}
}

// CheckConfigured reports a ConfigurationError when no completion client exists.
func (s *ChatService) CheckConfigured() error {
	if s.completer == nil {
		return &ConfigurationError{Message: fmt.Sprintf("%s API key not configured", s.providerName)}
	}
	return nil
}

// Reply runs the prohibited check, then the expected-topic check, then the
// completion call. The prohibited check always wins.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if err := s.CheckConfigured(); err != nil {
		return "", err
	}

	if s.topics.ContainsProhibited(message) {
		return "", &PolicyError{Message: MsgProhibitedTopic}
	}
	if !s.topics.AlignsWithExpected(message) {
		return "", &PolicyError{Message: MsgOffTopic}
	}

	reply, err := s.completer.Complete(ctx, s.systemPrompt, message)
	if err != nil {
		log.Printf("chat: %s completion failed: %v", s.providerName, err)
		return "", err
	}
	return reply, nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellness-chat-backend/internal/config"
	"wellness-chat-backend/internal/filter"
	"wellness-chat-backend/internal/handlers"
	"wellness-chat-backend/internal/router"
	"wellness-chat-backend/internal/secrets"
	"wellness-chat-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Wellness Chat Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Fetch API Key from Secret Manager ────
	// A failure here is not fatal: /chat answers with a configuration error
	// until the process is restarted with a readable secret.
	apiKey, err := loadAPIKey(cfg)
	if err != nil {
		log.Printf("✗ Error accessing %s API key: %v", cfg.ProviderName(), err)
	} else if apiKey == "" {
		log.Printf("✗ %s API key from Secret Manager is empty", cfg.ProviderName())
	} else {
		log.Println("✓ API key loaded from Secret Manager")
	}

	// ──── Step 3: Initialize Completion Client ────
	completer, closeCompleter, err := newCompleter(context.Background(), cfg, apiKey)
	if err != nil {
		log.Printf("✗ %s client initialization failed: %v", cfg.ProviderName(), err)
	} else if completer != nil {
		defer closeCompleter()
		log.Printf("✓ %s client initialized (%s)", cfg.ProviderName(), cfg.CompletionModel)
	}

	// ──── Initialize Services & Handlers ────
	topics := filter.NewTopicFilter(cfg.ProhibitedTopics, cfg.ExpectedTopics)
	chatService := services.NewChatService(completer, topics, cfg.SystemPrompt, cfg.ProviderName())
	chatHandler := handlers.NewChatHandler(chatService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Wellness Chat Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Allowed origin: %s", cfg.AllowedOrigin)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// newCompleter builds the configured provider's client. It returns a nil
// Completer when apiKey is empty.
func newCompleter(ctx context.Context, cfg *config.Config, apiKey string) (services.Completer, func(), error) {
	noop := func() {}
	if apiKey == "" {
		return nil, noop, nil
	}

	switch cfg.CompletionProvider {
	case config.ProviderGemini:
		geminiService, err := services.NewGeminiService(ctx, apiKey, cfg.CompletionModel)
		if err != nil {
			return nil, noop, err
		}
		return geminiService, geminiService.Close, nil
	default:
		return services.NewOpenAIService(apiKey, cfg.CompletionModel, cfg.OpenAIBaseURL), noop, nil
	}
}

func loadAPIKey(cfg *config.Config) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.SecretTimeoutSeconds)*time.Second)
	defer cancel()

	loader, err := secrets.NewSecretManagerLoader(ctx, cfg.SecretVersion)
	if err != nil {
		return "", err
	}
	return loader.Load(ctx, cfg.GCPProjectID, cfg.SecretName)
}

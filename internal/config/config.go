package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const SystemPrompt = "You are an AI assistant specialized in helping users with health and wellness advice, focusing on fitness, nutrition, and mental health tips. Avoid medical diagnoses or legal advice."

var defaultProhibitedTopics = []string{
	"violence",
	"hate speech",
	"illegal activities",
	"explicit content",
	"self-harm",
	"political campaigning",
	"sensitive personal information",
}

var defaultExpectedTopics = []string{
	"fitness routines",
	"healthy eating habits",
	"mental health tips",
	"stress management",
	"wellness strategies",
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	// Server
	Port string
	Env  string

	// CORS
	AllowedOrigin string

	// Secret Manager
	GCPProjectID         string
	SecretName           string
	SecretVersion        string
	SecretTimeoutSeconds int

	// Completion API
	CompletionProvider string
	CompletionModel    string
	OpenAIBaseURL      string

	// Content policy
	SystemPrompt     string
	ProhibitedTopics []string
	ExpectedTopics   []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	provider := strings.ToLower(getEnvOrDefault("COMPLETION_PROVIDER", ProviderOpenAI))

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		AllowedOrigin:        getEnvOrDefault("ALLOWED_ORIGIN", "https://your-frontend-url.com"),
		GCPProjectID:         getEnvOrDefault("GCP_PROJECT_ID", "your-google-cloud-project-id"),
		SecretName:           getEnvOrDefault("OPENAI_SECRET_NAME", "openai-api-key"),
		SecretVersion:        getEnvOrDefault("SECRET_VERSION", "latest"),
		SecretTimeoutSeconds: getEnvAsIntOrDefault("SECRET_TIMEOUT_SECONDS", 10),
		CompletionProvider:   provider,
		CompletionModel:      getEnvOrDefault("COMPLETION_MODEL", defaultModel(provider)),
		OpenAIBaseURL:        getEnvOrDefault("OPENAI_BASE_URL", ""),
		SystemPrompt:         SystemPrompt,
		ProhibitedTopics:     getEnvAsListOrDefault("PROHIBITED_TOPICS", defaultProhibitedTopics),
		ExpectedTopics:       getEnvAsListOrDefault("EXPECTED_TOPICS", defaultExpectedTopics),
	}

	return cfg
}

// ProviderName is the display name used in user-facing messages.
func (c *Config) ProviderName() string {
	if c.CompletionProvider == ProviderGemini {
		return "Gemini"
	}
	return "OpenAI"
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-1.5-flash"
	}
	return "gpt-4"
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

// getEnvAsListOrDefault splits a comma-separated value, trimming entries and
// dropping blanks. The default slice is copied so callers never share it.
func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	var out []string
	for _, item := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultVal...)
	}
	return out
}

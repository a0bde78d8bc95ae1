package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	SessionSecret       string
	SessionExpiry       time.Duration
	GoogleClientID      string
	GoogleClientSecret  string
	GoogleRedirectURI   string
	FirebaseProjectID   string
	FirebaseCredentials string
	AIProvider          string
	GroqAPIKey          string
	GroqModel           string
	OllamaBaseURL       string
	OllamaModel         string
	LLMTimeout          time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sessionExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("SESSION_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			sessionExpiry = parsed
		}
	}

	llmTimeout := 30 * time.Second
	if exp := os.Getenv("LLM_TIMEOUT"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			llmTimeout = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		SessionSecret:       getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		SessionExpiry:       sessionExpiry,
		GoogleClientID:      getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:  getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:   getEnv("GOOGLE_REDIRECT_URI", "http://localhost:8080/callback"),
		FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		AIProvider:          getEnv("AI_PROVIDER", "auto"),
		GroqAPIKey:          getEnv("GROQ_API_KEY", ""),
		GroqModel:           getEnv("GROQ_MODEL", ""),
		OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", ""),
		OllamaModel:         getEnv("OLLAMA_MODEL", ""),
		LLMTimeout:          llmTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

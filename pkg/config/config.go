package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Adzuna job listings API credentials
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string // "us", "gb", "fr", …

	// OpenRouter (OpenAI-compatible) LLM access
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	// Directory holding the favorite-job and last-search-output files
	DataDir string

	// Upper bound applied to num_results at the HTTP boundary
	MaxSearchResults int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		AdzunaAppID:        os.Getenv("ADZUNA_APP_ID"),
		AdzunaAppKey:       os.Getenv("ADZUNA_APP_KEY"),
		AdzunaCountry:      getEnv("ADZUNA_COUNTRY", "us"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "openai/gpt-4-turbo-preview"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "jobassist"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
		DataDir:            getEnv("DATA_DIR", "data"),
		MaxSearchResults:   getEnvInt("MAX_SEARCH_RESULTS", 10),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

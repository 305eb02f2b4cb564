package config

import (
	"errors"
	"os"
	"strconv"
)

// Config aggregates application-wide configuration values.
type Config struct {
	Port                string
	GeminiAPIKey        string
	GeminiModel         string
	Temperature         float32
	MaxOutputTokens     int32
	StructuredOutput    bool
	KakaoAPIKey         string
	RecordFailedHistory bool
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.0-flash-lite"),
		Temperature:         parseFloat32(getEnv("GEMINI_TEMPERATURE", "0.7"), 0.7),
		MaxOutputTokens:     parseInt32(getEnv("GEMINI_MAX_OUTPUT_TOKENS", "2048"), 2048),
		StructuredOutput:    parseBool(getEnv("GEMINI_STRUCTURED_OUTPUT", "true"), true),
		KakaoAPIKey:         os.Getenv("KAKAO_API_KEY"),
		RecordFailedHistory: parseBool(getEnv("HISTORY_RECORD_FAILURES", "false"), false),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 2048
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseFloat32(input string, fallback float32) float32 {
	f, err := strconv.ParseFloat(input, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}

func parseInt32(input string, fallback int32) int32 {
	n, err := strconv.ParseInt(input, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}

func parseBool(input string, fallback bool) bool {
	b, err := strconv.ParseBool(input)
	if err != nil {
		return fallback
	}
	return b
}

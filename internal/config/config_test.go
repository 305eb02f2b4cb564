package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.0-flash-lite" {
		t.Fatalf("unexpected default model: %s", cfg.GeminiModel)
	}
	if cfg.Temperature != 0.7 {
		t.Fatalf("expected default temperature 0.7, got %v", cfg.Temperature)
	}
	if cfg.MaxOutputTokens != 2048 {
		t.Fatalf("expected default max tokens 2048, got %d", cfg.MaxOutputTokens)
	}
	if !cfg.StructuredOutput {
		t.Fatal("expected structured output enabled by default")
	}
	if cfg.RecordFailedHistory {
		t.Fatal("expected failure recording disabled by default")
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when GEMINI_API_KEY is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_TEMPERATURE", "0.2")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "512")
	t.Setenv("GEMINI_STRUCTURED_OUTPUT", "false")
	t.Setenv("KAKAO_API_KEY", "kakao-key")
	t.Setenv("HISTORY_RECORD_FAILURES", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("unexpected model: %s", cfg.GeminiModel)
	}
	if cfg.Temperature != 0.2 {
		t.Fatalf("unexpected temperature: %v", cfg.Temperature)
	}
	if cfg.MaxOutputTokens != 512 {
		t.Fatalf("unexpected max tokens: %d", cfg.MaxOutputTokens)
	}
	if cfg.StructuredOutput {
		t.Fatal("expected structured output disabled")
	}
	if cfg.KakaoAPIKey != "kakao-key" {
		t.Fatalf("unexpected kakao key: %s", cfg.KakaoAPIKey)
	}
	if !cfg.RecordFailedHistory {
		t.Fatal("expected failure recording enabled")
	}
}

func TestLoad_InvalidNumericFallsBack(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_TEMPERATURE", "hot")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Temperature != 0.7 {
		t.Fatalf("expected fallback temperature, got %v", cfg.Temperature)
	}
	if cfg.MaxOutputTokens != 2048 {
		t.Fatalf("expected fallback max tokens, got %d", cfg.MaxOutputTokens)
	}
}

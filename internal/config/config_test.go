package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GO_ENV", "ALLOWED_ORIGIN", "GEMINI_API_KEY", "GEMINI_BASE_URL", "GEMINI_MODELS", "REDIS_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "8080")
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment: got %q", cfg.Environment)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey: got %q, want empty (absence is tolerated)", cfg.GeminiAPIKey)
	}
	if !reflect.DeepEqual(cfg.Models, DefaultModels) {
		t.Errorf("Models: got %v, want %v", cfg.Models, DefaultModels)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODELS", "first-model, second-model ,,third-model")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("Port: got %q", cfg.Port)
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Errorf("GeminiAPIKey: got %q", cfg.GeminiAPIKey)
	}
	want := []string{"first-model", "second-model", "third-model"}
	if !reflect.DeepEqual(cfg.Models, want) {
		t.Errorf("Models: got %v, want %v (order preserved, blanks dropped)", cfg.Models, want)
	}
}

func TestParseModelsAllBlank(t *testing.T) {
	if got := parseModels(" , ,"); !reflect.DeepEqual(got, DefaultModels) {
		t.Errorf("got %v, want defaults", got)
	}
}

func TestDefaultModelsNotAliased(t *testing.T) {
	models := parseModels("")
	models[0] = "mutated"
	if DefaultModels[0] == "mutated" {
		t.Error("parseModels must copy DefaultModels")
	}
}

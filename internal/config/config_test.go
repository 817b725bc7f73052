package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "" {
		t.Fatalf("BaseURL = %q, want empty", cfg.BaseURL)
	}
	if cfg.Collection != defaultCollection {
		t.Fatalf("Collection = %q, want %q", cfg.Collection, defaultCollection)
	}
	if cfg.RequestTimeout != defaultTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultTimeout)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
base_url = "  https://cats.example.test  "
collection = "  shelter  "
auth_token = "  tok3n  "
request_timeout_seconds = 3
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "https://cats.example.test" {
		t.Fatalf("BaseURL = %q, want trimmed url", cfg.BaseURL)
	}
	if cfg.Collection != "shelter" {
		t.Fatalf("Collection = %q, want %q", cfg.Collection, "shelter")
	}
	if cfg.AuthToken != "tok3n" {
		t.Fatalf("AuthToken = %q, want %q", cfg.AuthToken, "tok3n")
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
}

func TestLoad_EmptyFieldsUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
base_url = "https://cats.example.test"
collection = "   "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Collection != defaultCollection {
		t.Fatalf("Collection = %q, want %q", cfg.Collection, defaultCollection)
	}
	if cfg.RequestTimeout != defaultTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultTimeout)
	}
}

func TestLoad_MalformedConfigIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("base_url = [broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("Load should fail on malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Collection: "cats"}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Fatalf("Validate without base_url = %v, want base_url error", err)
	}

	cfg.BaseURL = "https://cats.example.test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}

	cfg.Collection = " "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate with blank collection should fail")
	}
}

func TestExpandPath_Tilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/nested/config.toml")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Fatalf("expandPath = %q, want it under HOME %q", got, home)
	}
}

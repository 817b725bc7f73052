package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything clowder needs to reach the cat store.
type Config struct {
	BaseURL        string
	Collection     string
	AuthToken      string
	RequestTimeout time.Duration
}

const (
	defaultConfigPath = "~/.config/clowder/config.toml"
	defaultCollection = "cats"
	defaultTimeout    = 10 * time.Second
)

// Load locates and parses the clowder config. A missing file yields
// defaults (with no base URL, which Validate rejects); a present but
// unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Collection: defaultCollection, RequestTimeout: defaultTimeout}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL        string `toml:"base_url"`
		Collection     string `toml:"collection"`
		AuthToken      string `toml:"auth_token"`
		TimeoutSeconds int    `toml:"request_timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.BaseURL = strings.TrimSpace(raw.BaseURL)
	cfg.AuthToken = strings.TrimSpace(raw.AuthToken)

	cfg.Collection = strings.TrimSpace(raw.Collection)
	if cfg.Collection == "" {
		cfg.Collection = defaultCollection
	}

	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}

	return cfg, nil
}

// Validate reports whether the config is complete enough to start.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base_url is required (set it in %s)", defaultConfigPath)
	}
	if strings.TrimSpace(c.Collection) == "" {
		return fmt.Errorf("collection must not be empty")
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

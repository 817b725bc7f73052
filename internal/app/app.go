package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mewbox/clowder/internal/catbase"
	"github.com/mewbox/clowder/internal/config"
	"github.com/mewbox/clowder/internal/prefs"
	"github.com/mewbox/clowder/internal/ui"
)

// Options configure the clowder application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/clowder/prefs.toml
	Timeout    time.Duration // zero uses the config value
}

// Run boots the clowder TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if opts.Timeout > 0 {
		cfg.RequestTimeout = opts.Timeout
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := catbase.NewClient(cfg.BaseURL, cfg.Collection, cfg.AuthToken, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init cat store client: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

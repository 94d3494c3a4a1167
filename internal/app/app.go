// Package app wires the Verdant TUI together: config, preferences, the
// catalog client, the collection controller, and the debounced search
// coordinator.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/calyptra/verdant/internal/catalog"
	"github.com/calyptra/verdant/internal/config"
	"github.com/calyptra/verdant/internal/debounce"
	"github.com/calyptra/verdant/internal/logging"
	"github.com/calyptra/verdant/internal/prefs"
	"github.com/calyptra/verdant/internal/state"
	"github.com/calyptra/verdant/internal/ui"
)

// Options configure the Verdant application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/verdant/prefs.toml
	APIBase      string // overrides the configured catalog address
	RefreshEvery int    // seconds; zero keeps the configured value
}

// Run boots the Verdant TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load verdant config: %w", err)
	}
	if opts.APIBase != "" {
		cfg.APIBase = opts.APIBase
	}
	if opts.RefreshEvery > 0 {
		cfg.RefreshEvery = opts.RefreshEvery
	}

	logger, err := logging.NewFileLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := catalog.NewClient(cfg.APIBase)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	controller := state.NewController()
	search := debounce.New(debounce.DefaultQuiet)
	defer search.Stop()

	logger.Info("starting verdant",
		zap.String("api_base", cfg.APIBase),
		zap.Int("refresh_every", cfg.RefreshEvery),
	)

	uiOpts := ui.Options{
		Context:    ctx,
		Client:     client,
		Controller: controller,
		Search:     search,
		Config:     &cfg,
		PrefsPath:  opts.PrefsPath,
		Prefs:      userPrefs,
	}
	if err := ui.Run(uiOpts); err != nil {
		logger.Error("ui exited", zap.Error(err))
		return err
	}
	return nil
}

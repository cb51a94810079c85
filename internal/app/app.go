package app

import (
	"context"
	"fmt"

	"github.com/pzielke/trolley/internal/config"
	"github.com/pzielke/trolley/internal/prefs"
	"github.com/pzielke/trolley/internal/shop"
	"github.com/pzielke/trolley/internal/state"
	"github.com/pzielke/trolley/internal/ui"
)

// Options configure the trolley application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/trolley/prefs.toml
}

// Run boots the trolley TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load trolley config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := shop.NewClient(cfg.APIBase)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}
	controller := state.NewController(client, store)

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: controller,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

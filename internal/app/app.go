package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/config"
	"github.com/bastionhq/certview/internal/prefs"
	"github.com/bastionhq/certview/internal/state"
	"github.com/bastionhq/certview/internal/ui"
)

// Options configure the certview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/certview/prefs.toml
	PollEvery  int    // seconds; zero uses default
}

// Run boots the certview TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load bastion config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := bastion.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init bastion client: %w", err)
	}

	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, store, client, cfg.AuditLog, interval)

	// Do initial refresh to populate store before UI starts
	refresh(ctx, store, client, cfg.AuditLog)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Config:    cfg,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PageSize:  userPrefs.PageSize,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

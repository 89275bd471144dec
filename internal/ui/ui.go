package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/config"
	"github.com/bastionhq/certview/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Client    *bastion.Client
	Store     *state.Store
	Config    config.Config
	PollTick  time.Duration
	ThemeName string
	PageSize  int
	PrefsPath string
}

const defaultUIInterval = time.Second

// Run wires up the tview components and blocks until the context is
// cancelled or the user quits.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Client == nil {
		return fmt.Errorf("ui requires an api client")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	app := tview.NewApplication()
	model, err := newViewModel(app, opts)
	if err != nil {
		return err
	}

	refreshEvery := opts.PollTick
	if refreshEvery <= 0 {
		refreshEvery = defaultUIInterval
	}
	if refreshEvery > time.Second {
		// The store may update between poll ticks (manual actions); redraw
		// at least once a second so the header's age readout stays honest.
		refreshEvery = time.Second
	}

	go func() {
		ticker := time.NewTicker(refreshEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				app.QueueUpdateDraw(func() { app.Stop() })
				return
			case <-ticker.C:
				snapshot := opts.Store.Snapshot()
				app.QueueUpdateDraw(func() {
					model.update(snapshot)
				})
			}
		}
	}()

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		return model.handleKey(event)
	})

	// Seed the first frame before the event loop starts.
	model.update(opts.Store.Snapshot())

	return app.SetRoot(model.root, true).SetFocus(model.table).Run()
}

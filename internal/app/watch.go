package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/weave/internal/adapters/watcher" //nolint:depguard // Wired in app layer
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	RunOptions
	// Debounce is the quiet period before a rebuild. Zero uses the watcher default.
	Debounce time.Duration
}

// Watch builds once, then rebuilds whenever the config file or a resource of the compiled
// container changes. It returns when ctx is canceled. A failed rebuild is logged and the
// watch goes on.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	res, err := a.Build(ctx, opts.RunOptions)
	if err != nil {
		return err
	}
	// Later builds reuse the config file found by the first one.
	opts.ConfigPath = res.ConfigPath

	if err := a.watcher.Start(ctx, res.Resources); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn("failed to stop watcher: " + err.Error())
		}
	}()

	window := opts.Debounce
	if window == 0 {
		window = watcher.DefaultDebounceWindow
	}

	var mu sync.Mutex
	rebuild := func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}

		a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding", len(paths)))
		res, err := a.Build(ctx, opts.RunOptions)
		if err != nil {
			a.logger.Error(err)
			return
		}
		if err := a.watcher.Add(res.Resources); err != nil {
			a.logger.Error(err)
		}
	}

	a.logger.Info(fmt.Sprintf("watching %d file(s) for changes", len(res.Resources)))
	debouncer := watcher.NewDebouncer(window, rebuild)
	for event := range a.watcher.Events() {
		a.logger.Debug("changed: " + event.Path)
		debouncer.Add(event.Path)
	}

	// Wait for a rebuild in flight.
	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/weave/internal/adapters/cachestore" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/container"  //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	// Proxies removes the generated proxy files.
	Proxies bool
	// Cache removes the persisted compilation cache and the compiled container.
	Cache bool
}

// Clean removes generated artifacts from the project cache directory.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	project, err := a.loadProject(options.ConfigPath)
	if err != nil {
		return err
	}
	settings := project.Settings

	var errs error
	remove := func(path string) {
		if _, err := os.Lstat(path); errors.Is(err, os.ErrNotExist) {
			return
		}
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path))
			return
		}
		a.logger.Debug("removed " + path)
	}

	if options.Proxies {
		removed := 0
		for file := range a.walker.WalkFiles(settings.ProxyDir(), []string{"**/*" + settings.ProxyExtension}) {
			remove(file)
			removed++
		}
		a.logger.Info(fmt.Sprintf("removed %d proxy file(s)", removed))
	}

	if options.Cache {
		for _, path := range cachestore.Paths(settings.CacheDir) {
			remove(path)
		}
		remove(filepath.Join(settings.CacheDir, container.CompiledFileName))
		a.logger.Info("removed compilation cache")
	}

	return errs
}

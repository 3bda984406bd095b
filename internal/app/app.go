// Package app implements the application layer for weave.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/weave/internal/adapters/cachestore" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/container"  //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/compcache"
	"go.trai.ch/weave/internal/engine/pointcuts"
	"go.trai.ch/weave/internal/engine/weaver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	stores        *cachestore.Factory
	fingerprinter ports.Fingerprinter
	weaver        *weaver.Weaver
	walker        *fs.Walker
	watcher       ports.Watcher
	logger        ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	stores *cachestore.Factory,
	fingerprinter ports.Fingerprinter,
	w *weaver.Weaver,
	walker *fs.Walker,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		stores:        stores,
		fingerprinter: fingerprinter,
		weaver:        w,
		walker:        walker,
		watcher:       watcher,
		logger:        log,
	}
}

// LogOptions configures the application logger.
type LogOptions struct {
	Verbose bool
	JSON    bool
}

// ConfigureLogging applies the options when the logger supports them.
func (a *App) ConfigureLogging(opts LogOptions) {
	if opts.Verbose {
		if l, ok := a.logger.(interface{ SetLevel(slog.Level) }); ok {
			l.SetLevel(slog.LevelDebug)
		}
	}
	if opts.JSON {
		if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
			l.SetJSON(true)
		}
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the config file to load. It is discovered from the working directory
	// when empty.
	ConfigPath string
	// NoCache disables the compilation cache for the pass.
	NoCache bool
	// Provider overrides the configured cache provider.
	Provider string
}

// Result is the outcome of one build.
type Result struct {
	Report *domain.WeaveReport
	// ConfigPath is the config file the build was loaded from.
	ConfigPath string
	// Output is the compiled container file.
	Output string
	// Resources lists the files the compiled container depends on.
	Resources []string
}

// Run performs one build and logs its summary.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	_, err := a.Build(ctx, opts)
	return err
}

// Build loads the project, weaves its container and writes the compiled container.
func (a *App) Build(ctx context.Context, opts RunOptions) (*Result, error) {
	project, err := a.loadProject(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	settings := &project.Settings
	if opts.NoCache {
		settings.UseCompilationCache = false
	}
	if opts.Provider != "" {
		settings.CacheProvider = opts.Provider
	}

	var store ports.CacheStore
	if settings.UseCompilationCache {
		if !cachestore.Known(settings.CacheProvider) {
			return nil, zerr.With(domain.ErrUnknownCacheProvider, "provider", settings.CacheProvider)
		}
		store, err = a.stores.Open(settings.CacheProvider, settings.CacheDir)
		if err != nil {
			// The pass still runs, with a cache that lives only in memory.
			a.logger.Warn(zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()),
				"provider", settings.CacheProvider).Error())
			store = nil
		}
	}
	if store != nil {
		defer func() {
			if cerr := store.Close(); cerr != nil {
				a.logger.Warn("failed to close cache store: " + cerr.Error())
			}
		}()
	}

	manifest := container.New(project)
	set, err := pointcuts.NewRegistry(manifest).Resolve()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWeaveFailed.Error())
	}

	buildID := uuid.NewString()
	a.logger.Debug(fmt.Sprintf("build %s: %d pointcut(s), cache %s", buildID, set.Len(), cacheMode(settings)))

	cache := compcache.New(store, a.fingerprinter, a.logger)
	report, err := a.weaver.Run(ctx, weaver.Pass{
		Container: manifest,
		Resolver:  container.NewClassResolver(project),
		Pointcuts: set,
		Cache:     cache,
		Settings:  *settings,
		BuildID:   buildID,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWeaveFailed.Error()), "build_id", buildID)
	}

	a.logger.Debug(fmt.Sprintf("compilation cache entries: %v", cache.Stats()))

	output := filepath.Join(settings.CacheDir, container.CompiledFileName)
	if err := manifest.WriteFile(output); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWeaveFailed.Error())
	}

	a.logger.Info(summary(report))
	return &Result{
		Report:     report,
		ConfigPath: project.Path,
		Output:     output,
		Resources:  manifest.Resources(),
	}, nil
}

func (a *App) loadProject(configPath string) (*domain.Project, error) {
	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		configPath, err = a.configLoader.Discover(cwd)
		if err != nil {
			return nil, err
		}
	}

	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

func cacheMode(s *domain.Settings) string {
	if !s.UseCompilationCache {
		return "disabled"
	}
	return s.CacheProvider
}

func summary(r *domain.WeaveReport) string {
	return fmt.Sprintf(
		"woven %d proxies (%d generated, %d cached), %d unmatched, %d recomputed, %d reused",
		len(r.Redirects),
		r.Count(domain.StatusGenerated),
		r.Count(domain.StatusCached),
		r.Count(domain.StatusUnmatched),
		r.Recomputed,
		r.Reused,
	)
}

package app_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/cachestore"
	"go.trai.ch/weave/internal/adapters/config"
	"go.trai.ch/weave/internal/adapters/container"
	"go.trai.ch/weave/internal/adapters/fs"
	"go.trai.ch/weave/internal/adapters/generator"
	"go.trai.ch/weave/internal/adapters/telemetry/progrock"
	"go.trai.ch/weave/internal/adapters/watcher"
	"go.trai.ch/weave/internal/app"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.trai.ch/weave/internal/engine/weaver"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const projectConfig = `
classes:
  - name: App\Foo
    file: src/Foo.php
    methods: [__construct, bar, baz]
  - name: App\Plain
    file: src/Plain.php
    methods: [run]
components:
  - id: app.foo
    class: App\Foo
  - id: app.plain
    class: App\Plain
  - id: app.logging_pointcut
    class: Weave\PatternPointcut
    tags:
      - name: weave.pointcut
        attributes: { interceptor: app.logging }
    pointcut:
      classes: [ 'App\Foo' ]
      methods: [ bar ]
`

type messages struct {
	mu   sync.Mutex
	info []string
	warn []string
	ch   chan string
}

func (m *messages) addWarn(msg string) {
	m.mu.Lock()
	m.warn = append(m.warn, msg)
	m.mu.Unlock()
}

func (m *messages) warnings() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.warn)
}

func (m *messages) add(msg string) {
	m.mu.Lock()
	m.info = append(m.info, msg)
	m.mu.Unlock()
	select {
	case m.ch <- msg:
	default:
	}
}

func (m *messages) waitFor(t *testing.T, prefix string) {
	t.Helper()
	deadline := time.After(10 * time.Second)
	for {
		select {
		case msg := <-m.ch:
			if strings.HasPrefix(msg, prefix) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for log message %q", prefix)
		}
	}
}

type fixture struct {
	dir    string
	config string
	app    *app.App
	logs   *messages
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "Foo.php"), []byte("<?php class Foo {}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "Plain.php"), []byte("<?php class Plain {}"), 0o600))
	configPath := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(projectConfig), 0o600))

	logs := &messages{ch: make(chan string, 256)}
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).Do(logs.addWarn).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).Do(logs.add).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logs.add("error: " + err.Error()) }).AnyTimes()

	fileWatcher, err := watcher.NewWatcher(logger)
	require.NoError(t, err)

	w := weaver.New(generator.New(), fs.NewVerifier(), progrock.New(), logger)
	a := app.New(
		config.NewLoader(logger),
		cachestore.NewFactory(),
		fs.NewFingerprinter(),
		w,
		fs.NewWalker(),
		fileWatcher,
		logger,
	)
	return &fixture{dir: dir, config: configPath, app: a, logs: logs}
}

func (f *fixture) cacheDir() string {
	return filepath.Join(f.dir, ".weave", "cache")
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	opts := app.RunOptions{ConfigPath: f.config}

	first, err := f.app.Build(ctx, opts)
	require.NoError(t, err)

	report := first.Report
	assert.Equal(t, domain.StatusGenerated, report.Statuses[`App\Foo`])
	assert.Equal(t, domain.StatusUnmatched, report.Statuses[`App\Plain`])
	assert.Equal(t, 2, report.Recomputed)
	require.Len(t, report.Redirects, 1)
	proxyFile := report.Redirects[0].ProxyFile
	assert.FileExists(t, proxyFile)
	assert.Equal(t, domain.InterceptorIndex{`App\Foo`: {"bar": {"app.logging"}}}, report.Interceptors)
	assert.Contains(t, first.Resources, f.config)
	assert.Contains(t, first.Resources, filepath.Join(f.dir, "src", "Foo.php"))

	data, err := os.ReadFile(first.Output)
	require.NoError(t, err)
	var compiled container.Compiled
	require.NoError(t, yaml.Unmarshal(data, &compiled))
	assert.Equal(t, report.Redirects[0].ProxyClass, compiled.Components[0].Class)
	assert.Equal(t, map[string]string{"app.logging": "app.logging_pointcut"}, compiled.Pointcuts)

	t.Run("second build reuses everything", func(t *testing.T) {
		before, err := os.Stat(proxyFile)
		require.NoError(t, err)

		second, err := f.app.Build(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Report.Recomputed)
		assert.Equal(t, 2, second.Report.Reused)
		assert.Equal(t, domain.StatusCached, second.Report.Statuses[`App\Foo`])

		after, err := os.Stat(proxyFile)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("modified class is recomputed", func(t *testing.T) {
		later := time.Now().Add(time.Hour)
		require.NoError(t, os.Chtimes(filepath.Join(f.dir, "src", "Foo.php"), later, later))

		third, err := f.app.Build(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, 1, third.Report.Recomputed)
		assert.Equal(t, 1, third.Report.Reused)
		assert.Equal(t, domain.StatusGenerated, third.Report.Statuses[`App\Foo`])
	})

	t.Run("no cache recomputes every class", func(t *testing.T) {
		res, err := f.app.Build(ctx, app.RunOptions{ConfigPath: f.config, NoCache: true})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Report.Recomputed)
		assert.Equal(t, 0, res.Report.Reused)
	})
}

func TestApp_BuildProviders(t *testing.T) {
	for _, provider := range []string{
		domain.CacheProviderBadger,
		domain.CacheProviderSQLite,
		domain.CacheProviderMemory,
	} {
		t.Run(provider, func(t *testing.T) {
			f := newFixture(t)
			opts := app.RunOptions{ConfigPath: f.config, Provider: provider}

			_, err := f.app.Build(context.Background(), opts)
			require.NoError(t, err)

			second, err := f.app.Build(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, 0, second.Report.Recomputed)
			assert.Equal(t, domain.StatusCached, second.Report.Statuses[`App\Foo`])
		})
	}
}

func TestApp_BuildStoreUnavailable(t *testing.T) {
	f := newFixture(t)
	// A regular file where the badger directory belongs keeps the store from opening.
	require.NoError(t, os.MkdirAll(f.cacheDir(), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(f.cacheDir(), "badger"), []byte("x"), 0o600))
	opts := app.RunOptions{ConfigPath: f.config, Provider: domain.CacheProviderBadger}

	first, err := f.app.Build(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerated, first.Report.Statuses[`App\Foo`])
	assert.FileExists(t, first.Output)

	assert.True(t, slices.ContainsFunc(f.logs.warnings(), func(msg string) bool {
		return strings.Contains(msg, domain.ErrCacheOpenFailed.Error())
	}))

	second, err := f.app.Build(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Report.Recomputed)
	assert.Equal(t, 0, second.Report.Reused)
}

func TestApp_BuildErrors(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		f := newFixture(t)
		err := f.app.Run(context.Background(), app.RunOptions{ConfigPath: f.config, Provider: "redis"})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownCacheProvider.Error())
	})

	t.Run("missing config", func(t *testing.T) {
		f := newFixture(t)
		err := f.app.Run(context.Background(), app.RunOptions{ConfigPath: filepath.Join(f.dir, "missing.yaml")})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
	})

	t.Run("discovers config from working directory", func(t *testing.T) {
		f := newFixture(t)
		t.Chdir(filepath.Join(f.dir, "src"))
		require.NoError(t, f.app.Run(context.Background(), app.RunOptions{}))
		assert.FileExists(t, filepath.Join(f.cacheDir(), container.CompiledFileName))
	})
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.app.Build(ctx, app.RunOptions{ConfigPath: f.config})
	require.NoError(t, err)
	proxyFile := res.Report.Redirects[0].ProxyFile
	blob := filepath.Join(f.cacheDir(), domain.CacheBlobKey+".cache")
	require.FileExists(t, blob)

	require.NoError(t, f.app.Clean(ctx, app.CleanOptions{ConfigPath: f.config, Proxies: true}))
	assert.NoFileExists(t, proxyFile)
	assert.FileExists(t, blob)

	require.NoError(t, f.app.Clean(ctx, app.CleanOptions{ConfigPath: f.config, Cache: true}))
	assert.NoFileExists(t, blob)
	assert.NoFileExists(t, res.Output)

	rebuilt, err := f.app.Build(ctx, app.RunOptions{ConfigPath: f.config})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerated, rebuilt.Report.Statuses[`App\Foo`])
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- f.app.Watch(ctx, app.WatchOptions{
			RunOptions: app.RunOptions{ConfigPath: f.config},
			Debounce:   20 * time.Millisecond,
		})
	}()

	f.logs.waitFor(t, "watching")

	updated := strings.Replace(projectConfig, "methods: [ bar ]", "methods: [ bar, baz ]", 1)
	require.NoError(t, os.WriteFile(f.config, []byte(updated), 0o600))

	f.logs.waitFor(t, "1 file(s) changed")
	f.logs.waitFor(t, "woven")

	data, err := os.ReadFile(filepath.Join(f.cacheDir(), container.CompiledFileName))
	require.NoError(t, err)
	var compiled container.Compiled
	require.NoError(t, yaml.Unmarshal(data, &compiled))
	assert.Equal(t, map[string][]string{"bar": {"app.logging"}, "baz": {"app.logging"}}, compiled.Interceptors[`App\Foo`])

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

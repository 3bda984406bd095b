package domain

import "path/filepath"

// Cache provider names accepted by Settings.CacheProvider.
const (
	CacheProviderNone   = "none"
	CacheProviderFile   = "file"
	CacheProviderBadger = "badger"
	CacheProviderSQLite = "sqlite"
	CacheProviderMemory = "memory"
)

// Settings is the configuration surface consumed by the weaving pass.
type Settings struct {
	// CacheDir holds generated proxies and the backing cache.
	CacheDir string
	// UseCompilationCache toggles the whole memoization layer.
	UseCompilationCache bool
	// CacheProvider names the backing persistent store.
	CacheProvider string
	// ProxyExtension is appended to generated proxy file names.
	ProxyExtension string
}

// DefaultSettings returns the settings used when the config file omits a key.
func DefaultSettings() Settings {
	return Settings{
		CacheDir:            DefaultCachePath(),
		UseCompilationCache: true,
		CacheProvider:       CacheProviderFile,
		ProxyExtension:      DefaultProxyExtension,
	}
}

// ProxyDir returns the directory generated proxies are written to.
func (s Settings) ProxyDir() string {
	return filepath.Join(s.CacheDir, ProxyDirName)
}

// Project is a loaded configuration: settings plus the container manifest.
type Project struct {
	// Path is the config file the project was loaded from.
	Path     string
	Settings Settings
	// Classes holds the class metadata known to the build, keyed by class name.
	Classes map[string]*ClassMetadata
	// Definitions lists the container components in declaration order.
	Definitions []*Definition
}

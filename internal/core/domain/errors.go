package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingInterceptorAttribute is returned when a pointcut component does not declare
	// the interceptor it provides.
	ErrMissingInterceptorAttribute = zerr.New(`pointcut tag requires an "interceptor" attribute`)

	// ErrPointcutResolutionFailed is returned when a tagged pointcut component cannot be built.
	ErrPointcutResolutionFailed = zerr.New("failed to resolve pointcut")

	// ErrClassNotFound is returned by class resolvers when a class cannot be loaded.
	ErrClassNotFound = zerr.New("class not found")

	// ErrComponentNotFound is returned when a container component id is unknown.
	ErrComponentNotFound = zerr.New("component not found")

	// ErrUnknownCacheProvider is returned when the configured cache provider is not supported.
	ErrUnknownCacheProvider = zerr.New("unknown compilation cache provider")

	// ErrCacheOpenFailed is returned when the backing store cannot be opened.
	ErrCacheOpenFailed = zerr.New("failed to open compilation cache store")

	// ErrCacheReadFailed is returned when the backing store cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read compilation cache")

	// ErrCacheWriteFailed is returned when the backing store cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write compilation cache")

	// ErrCacheEncodeFailed is returned when the unit of work cannot be encoded.
	ErrCacheEncodeFailed = zerr.New("failed to encode compilation cache")

	// ErrCacheDecodeFailed is returned when the persisted blob cannot be decoded.
	ErrCacheDecodeFailed = zerr.New("failed to decode compilation cache")

	// ErrProxyGenerationFailed is returned when the proxy generator fails.
	ErrProxyGenerationFailed = zerr.New("failed to generate proxy")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find weave.yaml or weave.toml")

	// ErrInvalidManifest is returned when the class or component manifest is inconsistent.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCleanFailed is returned when removing cached artifacts fails.
	ErrCleanFailed = zerr.New("failed to clean cache directory")

	// ErrWeaveFailed is returned when a weaving pass cannot complete.
	ErrWeaveFailed = zerr.New("weaving failed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch files")
)

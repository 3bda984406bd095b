package domain

import "path/filepath"

const (
	// WeaveDirName is the name of the internal workspace directory.
	WeaveDirName = ".weave"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ProxyDirName is the name of the generated proxy directory inside the cache directory.
	ProxyDirName = "proxies"

	// ConfigFileName is the name of the YAML project configuration file.
	ConfigFileName = "weave.yaml"

	// TOMLConfigFileName is the name of the TOML project configuration file.
	TOMLConfigFileName = "weave.toml"

	// DefaultProxyExtension is appended to proxy file names when none is configured.
	DefaultProxyExtension = ".proxy"

	// CacheBlobKey is the fixed logical name of the persisted compilation cache blob.
	CacheBlobKey = "aop_compilation"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache directory.
// It joins .weave and cache.
func DefaultCachePath() string {
	return filepath.Join(WeaveDirName, CacheDirName)
}

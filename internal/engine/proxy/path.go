// Package proxy derives proxy class names, proxy file locations and the include path from a
// proxy back to the class it extends.
package proxy

import (
	"path/filepath"
	"strings"

	"go.trai.ch/weave/internal/core/ports"
)

var filenameReplacer = strings.NewReplacer(`\`, "-", "/", "-")

// Filename returns the file a proxy for className is written to.
func Filename(proxyDir, className, ext string) string {
	return filepath.Join(proxyDir, filenameReplacer.Replace(className)+ext)
}

// Relativize expresses original relative to the directory of proxyPath. The directory is
// truncated one level at a time until it is an ancestor of original; each level adds "../".
// When the only common ancestor is the filesystem root, original is returned unchanged.
func Relativize(proxyPath, original string) string {
	base := filepath.Dir(proxyPath)
	level := 0

	for !isAncestor(base, original) {
		if isRoot(base) {
			return original
		}
		base = filepath.Dir(base)
		level++
	}
	if isRoot(base) {
		return original
	}

	return strings.Repeat("../", level) + original[len(base)+1:]
}

func isAncestor(dir, path string) bool {
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}

func isRoot(dir string) bool {
	return dir == string(filepath.Separator) || dir == "." || dir == ""
}

// RequiredFile builds the reference a proxy at proxyPath uses to load original.
// It returns nil when the original file is unknown.
func RequiredFile(proxyPath, original string) *ports.RequiredFile {
	if original == "" {
		return nil
	}
	rel := Relativize(proxyPath, original)
	return &ports.RequiredFile{
		Path:     rel,
		Relative: strings.HasPrefix(rel, "."),
	}
}

package fs

import (
	"os"

	"go.trai.ch/zerr"
)

// Fingerprinter reads modification times from the file system.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// ModTime returns the modification time of path in UnixNano.
func (f *Fingerprinter) ModTime(path string) (int64, error) {
	if path == "" {
		return 0, zerr.New("empty path")
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.ModTime().UnixNano(), nil
}

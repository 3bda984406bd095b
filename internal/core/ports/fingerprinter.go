package ports

// Fingerprinter reads change fingerprints of source files.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// ModTime returns the last modification time of the file in UnixNano.
	ModTime(path string) (int64, error)
}

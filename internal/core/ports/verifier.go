package ports

// Verifier defines the interface for verifying file existence.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type Verifier interface {
	// FileExists reports whether a regular file exists at path.
	FileExists(path string) (bool, error)
}

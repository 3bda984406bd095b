package ports

import "go.trai.ch/weave/internal/core/domain"

// ClassResolver provides build-time class metadata.
//
//go:generate mockgen -source=class_resolver.go -destination=mocks/mock_class_resolver.go -package=mocks
type ClassResolver interface {
	// ResolveClass returns the metadata of the named class.
	// fileHint is the source file configured on the definition, empty when unknown.
	// It returns domain.ErrClassNotFound when the class cannot be loaded.
	ResolveClass(name, fileHint string) (*domain.ClassMetadata, error)
}

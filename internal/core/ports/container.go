// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/weave/internal/core/domain"

// PointcutReference links an interceptor id to the component providing its pointcut.
type PointcutReference struct {
	Interceptor string
	ComponentID string
}

// Container is the dependency-injection container being compiled.
//
//go:generate mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks
type Container interface {
	// Definitions returns the top-level component definitions in registration order.
	Definitions() []*domain.Definition

	// TaggedDefinitions returns the definitions carrying the given tag, in registration order.
	TaggedDefinitions(tag string) []*domain.Definition

	// Pointcut instantiates the pointcut provided by the given component.
	Pointcut(id string) (Pointcut, error)

	// SetPointcutReferences hands the discovered pointcuts to the runtime pointcut container.
	SetPointcutReferences(refs []PointcutReference)

	// AddResource records a file the compiled container depends on.
	AddResource(path string)

	// RegisterInterceptors hands the interceptor index to the runtime interceptor loader.
	RegisterInterceptors(index domain.InterceptorIndex)
}

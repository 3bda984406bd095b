package container

import (
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// ClassResolver serves the class metadata declared in the project manifest.
type ClassResolver struct {
	classes map[string]*domain.ClassMetadata
}

// NewClassResolver creates a resolver over the project classes.
func NewClassResolver(project *domain.Project) *ClassResolver {
	return &ClassResolver{classes: project.Classes}
}

// ResolveClass returns the declared metadata. A class declared without a source file takes
// the file configured on the definition.
func (r *ClassResolver) ResolveClass(name, fileHint string) (*domain.ClassMetadata, error) {
	class, ok := r.classes[name]
	if !ok {
		return nil, zerr.With(domain.ErrClassNotFound, "class", name)
	}
	if class.File != "" || fileHint == "" {
		return class, nil
	}

	hinted := *class
	hinted.File = fileHint
	return &hinted, nil
}

// Package container provides the manifest-backed container compiled by weave.
package container

import (
	"slices"

	"go.trai.ch/weave/internal/adapters/pattern"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manifest implements ports.Container over the components of a loaded project.
type Manifest struct {
	project      *domain.Project
	byID         map[string]*domain.Definition
	pointcuts    map[string]ports.Pointcut
	references   []ports.PointcutReference
	resources    []string
	seen         map[string]struct{}
	interceptors domain.InterceptorIndex
}

// New creates a container over the project definitions. The config file is recorded as the
// first resource.
func New(project *domain.Project) *Manifest {
	m := &Manifest{
		project:      project,
		byID:         make(map[string]*domain.Definition, len(project.Definitions)),
		pointcuts:    make(map[string]ports.Pointcut),
		seen:         make(map[string]struct{}),
		interceptors: make(domain.InterceptorIndex),
	}
	for _, def := range project.Definitions {
		m.byID[def.ID] = def
	}
	if project.Path != "" {
		m.AddResource(project.Path)
	}
	return m
}

// Definitions returns the top-level definitions in registration order.
func (m *Manifest) Definitions() []*domain.Definition {
	return m.project.Definitions
}

// TaggedDefinitions returns the definitions carrying the tag, in registration order.
func (m *Manifest) TaggedDefinitions(tag string) []*domain.Definition {
	var out []*domain.Definition
	for _, def := range m.project.Definitions {
		if _, ok := def.Tag(tag); ok {
			out = append(out, def)
		}
	}
	return out
}

// Pointcut builds the pattern pointcut declared on the component.
func (m *Manifest) Pointcut(id string) (ports.Pointcut, error) {
	if pc, ok := m.pointcuts[id]; ok {
		return pc, nil
	}

	def, ok := m.byID[id]
	if !ok {
		return nil, zerr.With(domain.ErrComponentNotFound, "component", id)
	}
	if def.Pointcut == nil {
		return nil, zerr.With(zerr.Wrap(zerr.New("component declares no pointcut patterns"),
			domain.ErrPointcutResolutionFailed.Error()), "component", id)
	}

	pc, err := pattern.New(pattern.Spec{
		Classes: def.Pointcut.Classes,
		Methods: def.Pointcut.Methods,
		Inherit: def.Pointcut.Inherit,
		Source:  m.project.Path,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPointcutResolutionFailed.Error()), "component", id)
	}
	m.pointcuts[id] = pc
	return pc, nil
}

// SetPointcutReferences records the interceptor to pointcut component references.
func (m *Manifest) SetPointcutReferences(refs []ports.PointcutReference) {
	m.references = slices.Clone(refs)
}

// AddResource records a file the compiled container depends on. Duplicates are ignored.
func (m *Manifest) AddResource(path string) {
	if path == "" {
		return
	}
	if _, ok := m.seen[path]; ok {
		return
	}
	m.seen[path] = struct{}{}
	m.resources = append(m.resources, path)
}

// RegisterInterceptors merges the index into the interceptor loader arguments.
func (m *Manifest) RegisterInterceptors(index domain.InterceptorIndex) {
	m.interceptors.Merge(domain.ClassNameMethods(index))
}

// Resources returns the recorded resources in first-seen order.
func (m *Manifest) Resources() []string {
	return m.resources
}

// Interceptors returns the registered interceptor index.
func (m *Manifest) Interceptors() domain.InterceptorIndex {
	return m.interceptors
}

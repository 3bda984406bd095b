package pointcuts

import (
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry resolves the active pointcut set.
type Registry struct {
	container ports.Container
	static    []Entry
}

// NewRegistry discovers pointcuts from the container components tagged as pointcuts.
func NewRegistry(container ports.Container) *Registry {
	return &Registry{container: container}
}

// NewStaticRegistry uses a fixed list of pointcuts.
func NewStaticRegistry(entries ...Entry) *Registry {
	return &Registry{static: entries}
}

// Resolve returns the pointcut set. Tagged components must name the interceptor they provide.
// The discovered interceptor to component references are handed back to the container.
func (r *Registry) Resolve() (*Set, error) {
	if r.container == nil {
		return NewSet(r.static), nil
	}

	defs := r.container.TaggedDefinitions(domain.PointcutTag)
	entries := make([]Entry, 0, len(defs))
	refs := make([]ports.PointcutReference, 0, len(defs))

	for _, def := range defs {
		tag, _ := def.Tag(domain.PointcutTag)
		interceptor := tag.Attributes[domain.InterceptorAttribute]
		if interceptor == "" {
			return nil, zerr.With(domain.ErrMissingInterceptorAttribute, "component", def.ID)
		}

		pc, err := r.container.Pointcut(def.ID)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPointcutResolutionFailed.Error()), "component", def.ID)
		}

		entries = append(entries, Entry{Interceptor: interceptor, Pointcut: pc})
		refs = append(refs, ports.PointcutReference{Interceptor: interceptor, ComponentID: def.ID})
	}

	r.container.SetPointcutReferences(refs)
	return NewSet(entries), nil
}

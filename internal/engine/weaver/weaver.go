// Package weaver decides, for every class of a container, whether its advice must be
// recomputed or can be reused from the compilation cache, and whether its proxy must be
// regenerated.
package weaver

import (
	"context"
	"slices"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/compcache"
	"go.trai.ch/weave/internal/engine/pointcuts"
	"go.trai.ch/weave/internal/engine/proxy"
)

// Weaver runs weaving passes.
type Weaver struct {
	generator ports.ProxyGenerator
	verifier  ports.Verifier
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a Weaver.
func New(
	generator ports.ProxyGenerator,
	verifier ports.Verifier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Weaver {
	return &Weaver{
		generator: generator,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Pass holds the inputs of one weaving pass.
type Pass struct {
	Container ports.Container
	Resolver  ports.ClassResolver
	Pointcuts *pointcuts.Set
	Cache     *compcache.Cache
	Settings  domain.Settings
	BuildID   string
}

// Run weaves every definition of the container. The cache is loaded before the first
// definition and flushed when the pass ends, whatever the outcome.
func (w *Weaver) Run(ctx context.Context, p Pass) (*domain.WeaveReport, error) {
	st := &passState{
		w:         w,
		pass:      p,
		hash:      p.Pointcuts.Hash(),
		naming:    proxy.NewNamingStrategy(p.Settings.CacheDir),
		report:    domain.NewWeaveReport(p.BuildID),
		resources: make(map[string]struct{}),
	}
	st.report.PointcutsHash = st.hash

	err := p.Cache.Use(func() error {
		for _, def := range collectDefinitions(p.Container.Definitions()) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := st.processDefinition(ctx, def); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.Container.RegisterInterceptors(st.report.Interceptors)
	return st.report, nil
}

// collectDefinitions lists every definition in processing order: each top-level definition
// followed by the definitions inlined into it.
func collectDefinitions(defs []*domain.Definition) []*domain.Definition {
	all := make([]*domain.Definition, 0, len(defs))
	for _, def := range defs {
		all = append(all, def)
		all = slices.AppendSeq(all, def.InlineDefinitions())
	}
	return all
}

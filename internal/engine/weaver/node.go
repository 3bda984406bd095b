package weaver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/fs"
	"go.trai.ch/weave/internal/adapters/generator"
	"go.trai.ch/weave/internal/adapters/logger"
	"go.trai.ch/weave/internal/adapters/telemetry"
	"go.trai.ch/weave/internal/core/ports"
)

// NodeID is the unique identifier for the weaver node.
const NodeID graft.ID = "engine.weaver"

func init() {
	graft.Register(graft.Node[*Weaver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			generator.NodeID,
			fs.VerifierNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Weaver, error) {
			gen, err := graft.Dep[ports.ProxyGenerator](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(gen, verifier, tel, log), nil
		},
	})
}

package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/core/ports"
)

// NodeID is the unique identifier for the proxy generator node.
const NodeID graft.ID = "adapter.generator"

func init() {
	graft.Register(graft.Node[ports.ProxyGenerator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProxyGenerator, error) {
			return New(), nil
		},
	})
}

package cachestore

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the cache store factory node.
const NodeID graft.ID = "adapter.cachestore"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Factory, error) {
			return NewFactory(), nil
		},
	})
}

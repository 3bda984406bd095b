package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/logger"
	"go.trai.ch/weave/internal/adapters/telemetry/progrock"
	"go.trai.ch/weave/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the OpenTelemetry tracer.
const InstrumentationName = "weave"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			recorder, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer := NewTracerWithProvider(NewProvider(log), InstrumentationName)
			return NewFanout(recorder, tracer), nil
		},
	})
}

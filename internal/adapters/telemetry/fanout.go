package telemetry

import (
	"context"
	"errors"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// Fanout forwards every record to each of its recorders, in order.
type Fanout struct {
	recorders []ports.Telemetry
}

// NewFanout creates a Fanout over the given recorders.
func NewFanout(recorders ...ports.Telemetry) *Fanout {
	return &Fanout{recorders: recorders}
}

// Record starts a vertex on every recorder. Each recorder sees the context returned by the
// previous one.
func (f *Fanout) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertices := make(multiVertex, 0, len(f.recorders))
	for _, r := range f.recorders {
		var v ports.Vertex
		ctx, v = r.Record(ctx, name)
		vertices = append(vertices, v)
	}
	return ctx, vertices
}

// Close closes every recorder and joins their errors.
func (f *Fanout) Close() error {
	var errs []error
	for _, r := range f.recorders {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type multiVertex []ports.Vertex

func (m multiVertex) Log(level domain.LogLevel, msg string) {
	for _, v := range m {
		v.Log(level, msg)
	}
}

func (m multiVertex) Complete(err error) {
	for _, v := range m {
		v.Complete(err)
	}
}

func (m multiVertex) Cached() {
	for _, v := range m {
		v.Cached()
	}
}

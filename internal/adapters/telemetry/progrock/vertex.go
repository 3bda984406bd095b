package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/weave/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex   *progrock.VertexRecorder
	recorder *Recorder
}

// Log writes the message to the vertex output, prefixed with its level.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	if err != nil {
		v.recorder.count(func(s *Stats) { s.Failed++ })
	}
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.recorder.count(func(s *Stats) { s.Cached++ })
	v.vertex.Cached()
}

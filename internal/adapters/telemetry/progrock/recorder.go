// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/dedup/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock recording.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a new Recorder that renders phases through log.
func New(log ports.Logger) *Recorder {
	return NewRecorder(NewRenderer(log))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{rec: progrock.NewRecorder(w)}
}

// Record starts recording a new vertex identified by the digest of its name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close completes the recording and closes its writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}

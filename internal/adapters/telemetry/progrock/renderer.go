package progrock

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/dedup/internal/core/ports"
)

var _ progrock.Writer = (*Renderer)(nil)

// Renderer is a progrock.Writer that reports finished phases and their
// output through a logger. Phase lines are logged at debug level, so they
// only show with --verbose.
type Renderer struct {
	logger ports.Logger

	mu       sync.Mutex
	names    map[string]string
	reported map[string]bool
}

// NewRenderer creates a Renderer writing to log.
func NewRenderer(log ports.Logger) *Renderer {
	return &Renderer{
		logger:   log,
		names:    make(map[string]string),
		reported: make(map[string]bool),
	}
}

// WriteStatus renders the vertex and log updates of a status update.
func (r *Renderer) WriteStatus(update *progrock.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range update.Vertexes {
		r.renderVertex(v)
	}
	for _, l := range update.Logs {
		r.renderLog(l)
	}
	return nil
}

// Close does nothing. The logger outlives the recording.
func (r *Renderer) Close() error {
	return nil
}

func (r *Renderer) renderVertex(v *progrock.Vertex) {
	r.names[v.Id] = v.Name
	if v.Completed == nil || r.reported[v.Id] {
		return
	}
	r.reported[v.Id] = true

	switch {
	case v.Error != nil:
		r.logger.Debug(fmt.Sprintf("%s failed: %s", v.Name, *v.Error))
	case v.Canceled:
		r.logger.Debug(v.Name + " canceled")
	case v.Cached:
		r.logger.Debug(fmt.Sprintf("%s cached in %s", v.Name, elapsed(v)))
	default:
		r.logger.Debug(fmt.Sprintf("%s done in %s", v.Name, elapsed(v)))
	}
}

func (r *Renderer) renderLog(l *progrock.VertexLog) {
	name := r.names[l.Vertex]
	for line := range strings.Lines(string(l.Data)) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		msg := name + ": " + line
		if l.Stream == progrock.LogStream_STDERR {
			r.logger.Warn(msg)
		} else {
			r.logger.Debug(msg)
		}
	}
}

func elapsed(v *progrock.Vertex) time.Duration {
	if v.Started == nil {
		return 0
	}
	return v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
}

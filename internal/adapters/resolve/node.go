package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dedup/internal/core/ports"
)

// NodeID is the unique identifier for the resolver factory Graft node.
const NodeID graft.ID = "adapter.resolver_factory"

func init() {
	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResolverFactory, error) {
			return NewFactory(), nil
		},
	})
}

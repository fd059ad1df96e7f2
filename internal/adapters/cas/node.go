package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dedup/internal/core/ports"
)

const NodeID graft.ID = "adapter.duplicate_set_store"

func init() {
	graft.Register(graft.Node[ports.DuplicateSetStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DuplicateSetStore, error) {
			return NewStore(), nil
		},
	})
}

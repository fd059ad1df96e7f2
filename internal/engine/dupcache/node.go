package dupcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dedup/internal/adapters/cas"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dedup/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dedup/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/dedup/internal/engine/scanner"
)

// NodeID is the unique identifier for the duplicate-set cache Graft node.
const NodeID graft.ID = "engine.dupcache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scanner.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			fs.PatchListerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			scan, err := graft.Dep[ports.ManifestScanner](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.DuplicateSetStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			patches, err := graft.Dep[ports.PatchLister](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(scan, store, hasher, patches, log), nil
		},
	})
}

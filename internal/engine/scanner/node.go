package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dedup/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dedup/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dedup/internal/core/ports"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "engine.scanner"

func init() {
	graft.Register(graft.Node[ports.ManifestScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			fs.ManifestReaderNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ManifestScanner, error) {
			finder, err := graft.Dep[ports.ManifestFinder](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(finder, reader, log), nil
		},
	})
}

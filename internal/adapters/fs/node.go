package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dedup/internal/core/ports"
)

const (
	WalkerNodeID         graft.ID = "adapter.fs.walker"
	HasherNodeID         graft.ID = "adapter.fs.hasher"
	ManifestReaderNodeID graft.ID = "adapter.fs.manifest_reader"
	IdentitiesNodeID     graft.ID = "adapter.fs.identities"
	PatchListerNodeID    graft.ID = "adapter.fs.patch_lister"
)

func init() {
	graft.Register(graft.Node[ports.ManifestFinder]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestFinder, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        ManifestReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestReader, error) {
			return NewManifestReader(), nil
		},
	})

	graft.Register(graft.Node[ports.IdentityReader]{
		ID:        IdentitiesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ManifestReaderNodeID},
		Run: func(ctx context.Context) (ports.IdentityReader, error) {
			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			return NewIdentities(reader), nil
		},
	})

	graft.Register(graft.Node[ports.PatchLister]{
		ID:        PatchListerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PatchLister, error) {
			return NewPatchLister(), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dedup/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dedup/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/dedup/internal/adapters/lockfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/dedup/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dedup/internal/adapters/resolve"            //nolint:depguard // Wired in app layer
	"go.trai.ch/dedup/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/dedup/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/dedup/internal/engine/dupcache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			dupcache.NodeID,
			lockfile.NodeID,
			fs.HasherNodeID,
			resolve.NodeID,
			fs.IdentitiesNodeID,
			watcher.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*dupcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	locks, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	resolvers, err := graft.Dep[ports.ResolverFactory](ctx)
	if err != nil {
		return nil, err
	}

	identities, err := graft.Dep[ports.IdentityReader](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, cache, locks, hasher, resolvers, identities, w, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}

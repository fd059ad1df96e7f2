package ports

import (
	"context"
	"iter"
)

// Watcher reports file system changes in coalesced batches.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching. Each of dirs is watched on its own; each of trees
	// is watched together with all of its subdirectories.
	Start(ctx context.Context, dirs, trees []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Batches yields the paths changed within one debounce window until the
	// watcher stops.
	Batches() iter.Seq[[]string]
}

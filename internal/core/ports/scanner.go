package ports

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/dedup/internal/core/domain"
)

// ManifestScanner finds duplicate installs in a dependency tree.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type ManifestScanner interface {
	// Scan returns the duplicate sets under root, leaving out excluded keys.
	Scan(ctx context.Context, root string, excluded mapset.Set[domain.PackageKey]) (domain.DuplicateSets, error)
}

package ports

import (
	"context"

	"go.trai.ch/dedup/internal/core/domain"
)

// ManifestReader decodes package manifests.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read decodes the manifest file at path.
	Read(path string) (*domain.Manifest, error)
}

// IdentityReader reports the package a path belongs to.
type IdentityReader interface {
	// Identity returns the name and version declared by the manifest nearest
	// to path, walking up from path itself.
	Identity(path string) (domain.PackageIdentity, error)
}

// ManifestFinder enumerates installed manifests.
type ManifestFinder interface {
	// FindManifests returns every package.json under root/node_modules, sorted ascending.
	FindManifests(ctx context.Context, root string) ([]string, error)
}

// PatchLister enumerates patched packages.
type PatchLister interface {
	// ListPatched returns the keys of the packages patched in dir.
	// A missing directory yields no keys.
	ListPatched(dir string) ([]domain.PackageKey, error)
}

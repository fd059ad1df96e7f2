package ports

import "go.trai.ch/dedup/internal/core/domain"

// ConfigLoader defines the interface for loading the dedup configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, or dedup.yaml in cwd when path is empty.
	// A missing default file yields the default configuration rooted at cwd.
	Load(cwd, path string) (*domain.Config, error)
}

package ports

import "go.trai.ch/wpbuild/internal/core/domain"

// ConfigLoader reads a fresh configuration snapshot.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads file (relative to root unless absolute), applies defaults and
	// environment overrides, and validates the result.
	// A missing file yields the defaults.
	Load(root, file string) (domain.Config, error)
}

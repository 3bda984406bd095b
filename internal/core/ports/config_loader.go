package ports

import "go.trai.ch/weave/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Discover returns the config file to use in cwd.
	Discover(cwd string) (string, error)

	// Load reads the configuration file and returns the project.
	Load(path string) (*domain.Project, error)
}

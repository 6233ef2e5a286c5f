package ports

import "github.com/aretw0/lsys/pkg/domain"

// ConfigLoader defines how drivers retrieve a run configuration.
// This allows the source (file, flags, builder) to be decoupled.
type ConfigLoader interface {
	// Load returns the configuration or an error describing what is wrong with it.
	Load() (domain.Config, error)
}

package config

import "context"

// Loader is the interface for a source-specific configuration loader.
type Loader interface {
	// Load reads configuration from its source and translates it into the
	// loader-agnostic Config model.
	Load(ctx context.Context) (Config, error)
}

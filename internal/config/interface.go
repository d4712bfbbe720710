package config

import "context"

// Loader is the interface for a format-specific site data loader. It reads
// food and recipe definitions from the given paths and translates them into
// the format-agnostic Site model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Site, error)
}

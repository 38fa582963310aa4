package store

import (
	"context"

	"go.ngs.io/surf-api/internal/domain"
)

// BeachStore is the interface for persisting the beach registry.
// Implementations rewrite the whole registry on every Save.
type BeachStore interface {
	// Load returns every stored beach keyed by ID.
	// A store that has never been written returns an empty map.
	Load(ctx context.Context) (map[string]domain.Beach, error)

	// Save replaces the stored registry with beaches.
	Save(ctx context.Context, beaches map[string]domain.Beach) error
}

// BeachSource is the interface for reading beaches from an external seed.
type BeachSource interface {
	LoadBeaches(ctx context.Context) ([]domain.Beach, error)
}

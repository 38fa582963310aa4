package usecase

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"go.uber.org/zap"

	"go.ngs.io/surf-api/internal/adapter/store"
	"go.ngs.io/surf-api/internal/domain"
)

// Registry owns the in-memory beach registry and mirrors every mutation to
// its backing store.
type Registry struct {
	mu        sync.RWMutex
	beaches   map[string]domain.Beach
	store     store.BeachStore
	protected domain.ProtectedSet
	logger    *zap.Logger
}

// NewRegistry loads the registry from s.
func NewRegistry(ctx context.Context, s store.BeachStore, protected domain.ProtectedSet, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	beaches, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	return &Registry{
		beaches:   beaches,
		store:     s,
		protected: protected,
		logger:    logger,
	}, nil
}

// Get returns the beach with the given ID (case-insensitive).
func (r *Registry) Get(id string) (domain.Beach, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.beaches[domain.NormalizeID(id)]
	return b, ok
}

// List returns every beach sorted by ID.
func (r *Registry) List() []domain.Beach {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Beach, 0, len(r.beaches))
	for _, b := range r.beaches {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Len returns the number of registered beaches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.beaches)
}

// Add registers a new beach. Registration never overwrites an existing ID.
func (r *Registry) Add(ctx context.Context, b domain.Beach) (string, error) {
	b.ID = domain.NormalizeID(b.ID)
	if err := b.Validate(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.beaches[b.ID]; exists {
		return "", fmt.Errorf("%w: %s", domain.ErrDuplicateID, b.ID)
	}

	r.beaches[b.ID] = b
	if err := r.store.Save(ctx, r.beaches); err != nil {
		delete(r.beaches, b.ID)
		return "", fmt.Errorf("failed to persist beach %s: %w", b.ID, err)
	}

	r.logger.Info("beach registered",
		zap.String("id", b.ID),
		zap.String("name", b.Name),
		zap.String("country", b.Country))
	return fmt.Sprintf("Playa %s añadida correctamente", b.Name), nil
}

// Delete removes a beach. Protected IDs are rejected before the existence check.
func (r *Registry) Delete(ctx context.Context, id string) (string, error) {
	id = domain.NormalizeID(id)

	if r.protected.Contains(id) {
		return "", fmt.Errorf("%w: %s", domain.ErrProtected, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, exists := r.beaches[id]
	if !exists {
		return "", fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	delete(r.beaches, id)
	if err := r.store.Save(ctx, r.beaches); err != nil {
		r.beaches[id] = b
		return "", fmt.Errorf("failed to persist removal of %s: %w", id, err)
	}

	r.logger.Info("beach deleted", zap.String("id", id))
	return fmt.Sprintf("Playa %s eliminada correctamente", id), nil
}

// Seed adds beaches from src when the registry is empty and returns how many
// were imported.
func (r *Registry) Seed(ctx context.Context, src store.BeachSource) (int, error) {
	if r.Len() > 0 {
		return 0, nil
	}

	beaches, err := src.LoadBeaches(ctx)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := maps.Clone(r.beaches)
	for _, b := range beaches {
		b.ID = domain.NormalizeID(b.ID)
		if _, exists := next[b.ID]; exists {
			continue
		}
		next[b.ID] = b
	}
	if err := r.store.Save(ctx, next); err != nil {
		return 0, fmt.Errorf("failed to persist seed: %w", err)
	}

	imported := len(next) - len(r.beaches)
	r.beaches = next
	return imported, nil
}

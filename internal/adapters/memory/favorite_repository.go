package memory

import (
	"context"
	"fxwidget/internal/domain"
	"slices"
	"sync"
)

// FavoriteRepository is an in-process favorites store, used in tests and
// single-process deployments that do not need favorites to survive restarts.
type FavoriteRepository struct {
	mu   sync.RWMutex
	keys []domain.PairKey
}

func (r *FavoriteRepository) Load(_ context.Context) ([]domain.PairKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.keys == nil {
		return []domain.PairKey{}, nil
	}
	return slices.Clone(r.keys), nil
}

func (r *FavoriteRepository) Save(_ context.Context, keys []domain.PairKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = slices.Clone(keys)
	return nil
}

func NewFavoriteRepository(initial ...domain.PairKey) *FavoriteRepository {
	return &FavoriteRepository{keys: slices.Clone(initial)}
}

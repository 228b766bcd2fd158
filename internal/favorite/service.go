package favorite

import (
	"context"
	"fmt"
	"fxwidget/internal/adapters"
	"fxwidget/internal/domain"
	"fxwidget/internal/metrics"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// Service is the favorites store. Every mutation reads the whole persisted
// list, changes it in memory and writes the whole list back.
type Service struct {
	repo adapters.FavoriteRepository
	// serialises read-modify-write within this process
	mu sync.Mutex
}

// Add persists base/target unless the pair is already a favorite.
func (s *Service) Add(ctx context.Context, base, target string) (domain.Favorite, error) {
	pair := domain.Pair{Base: base, Target: target}
	key := pair.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("failed to load favorites: %w", err)
	}
	if slices.Contains(keys, key) {
		return domain.Favorite{}, domain.ErrDuplicateFavorite
	}

	keys = append(keys, key)
	if err = s.repo.Save(ctx, keys); err != nil {
		return domain.Favorite{}, fmt.Errorf("failed to save favorites: %w", err)
	}
	metrics.FavoritesAddedTotal.Inc()
	logrus.WithFields(logrus.Fields{"pair": key, "count": len(keys)}).Info("Favorite pair saved")
	return domain.NewFavorite(pair), nil
}

// Render returns one entry per persisted pair, in insertion order.
// Keys that do not split into two codes are skipped.
func (s *Service) Render(ctx context.Context) ([]domain.Favorite, error) {
	keys, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	out := make([]domain.Favorite, 0, len(keys))
	for _, key := range keys {
		pair, parseErr := domain.ParsePairKey(string(key))
		if parseErr != nil {
			logrus.WithField("pair", key).Warn("Skipping malformed favorite pair")
			continue
		}
		out = append(out, domain.NewFavorite(pair))
	}
	return out, nil
}

// Find returns the rendered favorite for key.
func (s *Service) Find(ctx context.Context, key domain.PairKey) (domain.Favorite, error) {
	favorites, err := s.Render(ctx)
	if err != nil {
		return domain.Favorite{}, err
	}
	for _, f := range favorites {
		if f.Key == key {
			return f, nil
		}
	}
	return domain.Favorite{}, domain.ErrFavoriteNotFound
}

func NewService(repo adapters.FavoriteRepository) *Service {
	return &Service{repo: repo}
}

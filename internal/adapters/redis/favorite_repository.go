package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fxwidget/internal/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const favoritesKey = "favoritePairs"

// FavoriteRepository stores the favorites list as a JSON array under one redis key.
type FavoriteRepository struct {
	client *goredis.Client
}

func (r *FavoriteRepository) Load(ctx context.Context) ([]domain.PairKey, error) {
	raw, err := r.client.Get(ctx, favoritesKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []domain.PairKey{}, nil
		}
		return nil, fmt.Errorf("failed to get %q: %w", favoritesKey, err)
	}

	keys := make([]domain.PairKey, 0)
	if err = json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", favoritesKey, err)
	}
	return keys, nil
}

func (r *FavoriteRepository) Save(ctx context.Context, keys []domain.PairKey) error {
	if keys == nil {
		keys = []domain.PairKey{}
	}
	payload, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", favoritesKey, err)
	}

	// no expiration: favorites outlive every session
	if err = r.client.Set(ctx, favoritesKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", favoritesKey, err)
	}
	logrus.WithField("count", len(keys)).Debug("favorites saved to redis")
	return nil
}

func NewFavoriteRepository(client *goredis.Client) *FavoriteRepository {
	return &FavoriteRepository{client: client}
}

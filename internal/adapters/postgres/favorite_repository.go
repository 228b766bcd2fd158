package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fxwidget/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const favoritesKey = "favoritePairs"

// FavoriteRepository keeps the whole favorites list as one JSON value in kv_store.
type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func (r *FavoriteRepository) Load(ctx context.Context) ([]domain.PairKey, error) {
	const q = `select value from kv_store where key = $1;`

	var raw []byte
	if err := r.pool.QueryRow(ctx, q, favoritesKey).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.PairKey{}, nil
		}
		return nil, fmt.Errorf("failed to select %q: %w", favoritesKey, err)
	}

	keys := make([]domain.PairKey, 0)
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", favoritesKey, err)
	}
	return keys, nil
}

func (r *FavoriteRepository) Save(ctx context.Context, keys []domain.PairKey) error {
	if keys == nil {
		keys = []domain.PairKey{}
	}
	payloadJSON, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", favoritesKey, err)
	}

	const q = `
		insert into kv_store(key, value, updated_at) values ($1, $2::jsonb, now())
		on conflict (key) do update
		set value = excluded.value, updated_at = now();
	`

	if _, err = r.pool.Exec(ctx, q, favoritesKey, string(payloadJSON)); err != nil {
		return fmt.Errorf("failed to save %q: %w", favoritesKey, err)
	}
	return nil
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

package adapters

import (
	"context"
	"fxwidget/internal/domain"
)

type RateClient interface {
	GetSnapshot(ctx context.Context, anchor string) (domain.Snapshot, error)
}

// FavoriteRepository persists the favorites list as a whole value.
type FavoriteRepository interface {
	Load(ctx context.Context) ([]domain.PairKey, error)
	Save(ctx context.Context, keys []domain.PairKey) error
}

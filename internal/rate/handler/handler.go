package handler

import (
	"context"
	"fxwidget/internal/rate"
)

type RateStore interface {
	Codes() []string
	Status() rate.Status
	Convert(amount, base, target string) (string, error)
}

type HistoricalFetcher interface {
	Fetch(ctx context.Context, base, target string) (rate.HistoricalRate, error)
}

type Handler struct {
	store      RateStore
	historical HistoricalFetcher
}

func NewRateHandler(store RateStore, historical HistoricalFetcher) *Handler {
	return &Handler{store: store, historical: historical}
}

package rate

import (
	"context"
	"errors"
	"fmt"
	"fxwidget/internal/adapters"
	"fxwidget/internal/metrics"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrUndatedSnapshot = errors.New("snapshot has no date")

// HistoricalRate is one rate extracted from a snapshot anchored at Base.
type HistoricalRate struct {
	Base   string    `json:"base"`
	Target string    `json:"target"`
	Date   time.Time `json:"date"`
	Rate   float64   `json:"rate"`
}

func (h HistoricalRate) Message() string {
	return fmt.Sprintf("Historical exchange rate on %s: 1 %s = %s %s",
		h.Date.Format(time.DateOnly), h.Base, decimal.NewFromFloat(h.Rate).StringFixed(2), h.Target)
}

type HistoricalResult struct {
	Rate HistoricalRate
	Err  error
}

// Message is the historical display text, a fixed notice on any failure.
func (r HistoricalResult) Message() string {
	if r.Err != nil {
		return HistoricalErrorMessage
	}
	return r.Rate.Message()
}

// HistoricalFetcher queries a snapshot anchored at the selected base currency.
// It is independent of the Store and never changes it.
type HistoricalFetcher struct {
	client adapters.RateClient
}

func (f *HistoricalFetcher) Fetch(ctx context.Context, base, target string) (HistoricalRate, error) {
	start := time.Now()
	rate, err := f.fetch(ctx, base, target)
	metrics.RateFetchDurationSeconds.WithLabelValues(metrics.FetchHistorical).Observe(time.Since(start).Seconds())
	metrics.RateFetchesTotal.WithLabelValues(metrics.FetchHistorical, metrics.Outcome(err)).Inc()

	if err != nil {
		entry := logrus.WithError(err).WithFields(logrus.Fields{"base": base, "target": target})
		if ctx.Err() != nil {
			entry.Debug("Historical fetch canceled")
		} else {
			entry.Error("Error fetching historical data")
		}
		return HistoricalRate{}, err
	}
	return rate, nil
}

func (f *HistoricalFetcher) fetch(ctx context.Context, base, target string) (HistoricalRate, error) {
	snap, err := f.client.GetSnapshot(ctx, base)
	if err != nil {
		return HistoricalRate{}, err
	}
	value, err := snap.Lookup(target)
	if err != nil {
		return HistoricalRate{}, fmt.Errorf("snapshot for %q: %w", base, err)
	}
	if snap.Date.IsZero() {
		return HistoricalRate{}, fmt.Errorf("snapshot for %q: %w", base, ErrUndatedSnapshot)
	}
	return HistoricalRate{Base: base, Target: target, Date: snap.Date, Rate: value}, nil
}

// FetchAsync runs Fetch in the background and delivers exactly one result.
func (f *HistoricalFetcher) FetchAsync(ctx context.Context, base, target string) <-chan HistoricalResult {
	out := make(chan HistoricalResult, 1)
	go func() {
		defer close(out)
		rate, err := f.Fetch(ctx, base, target)
		out <- HistoricalResult{Rate: rate, Err: err}
	}()
	return out
}

func NewHistoricalFetcher(client adapters.RateClient) *HistoricalFetcher {
	return &HistoricalFetcher{client: client}
}

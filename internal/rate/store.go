package rate

import (
	"context"
	"fmt"
	"fxwidget/internal/adapters"
	"fxwidget/internal/domain"
	"fxwidget/internal/metrics"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Status describes the store for the UI: whether rates can be offered and why not.
type Status struct {
	Available  bool      `json:"available"`
	Anchor     string    `json:"anchor"`
	Date       string    `json:"date,omitempty"`
	Currencies int       `json:"currencies"`
	LoadedAt   time.Time `json:"loaded_at,omitzero"`
	Error      string    `json:"error,omitempty"`
}

// Store holds the latest anchor-relative rate snapshot.
type Store struct {
	client adapters.RateClient
	anchor string

	mu       sync.RWMutex
	snapshot *domain.Snapshot
	loadedAt time.Time
	lastErr  error
}

// Load fetches a fresh snapshot and replaces the current one wholesale.
// On failure the previous snapshot, if any, stays in place.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()
	snap, err := s.client.GetSnapshot(ctx, s.anchor)
	metrics.RateFetchDurationSeconds.WithLabelValues(metrics.FetchLatest).Observe(time.Since(start).Seconds())
	metrics.RateFetchesTotal.WithLabelValues(metrics.FetchLatest, metrics.Outcome(err)).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastErr = err
		logrus.WithError(err).WithField("anchor", s.anchor).Error("Error fetching exchange rates")
		return fmt.Errorf("failed to load rates for %q: %w", s.anchor, err)
	}

	s.snapshot = &snap
	s.loadedAt = time.Now()
	s.lastErr = nil
	metrics.SnapshotCurrencies.Set(float64(snap.Len()))
	logrus.Infof("Loaded %d exchange rates anchored at %s", snap.Len(), snap.Anchor)
	return nil
}

func (s *Store) Snapshot() (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return domain.Snapshot{}, domain.ErrRatesUnavailable
	}
	return *s.snapshot, nil
}

// Codes returns the currencies offered for selection; empty until the first load.
func (s *Store) Codes() []string {
	snap, err := s.Snapshot()
	if err != nil {
		return []string{}
	}
	return snap.Codes()
}

func (s *Store) Has(code string) bool {
	snap, err := s.Snapshot()
	if err != nil {
		return false
	}
	_, ok := snap.Rate(code)
	return ok
}

func (s *Store) Rate(code string) (float64, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return 0, err
	}
	return snap.Lookup(code)
}

// Convert runs the converter against the current snapshot.
func (s *Store) Convert(amount, base, target string) (string, error) {
	snap, err := s.Snapshot()
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", err
	}
	res, err := Convert(amount, base, target, snap)
	metrics.ConversionsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	return res, err
}

func (s *Store) Anchor() string { return s.anchor }

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{Anchor: s.anchor, LoadedAt: s.loadedAt}
	if s.snapshot != nil {
		st.Available = true
		st.Currencies = s.snapshot.Len()
		if !s.snapshot.Date.IsZero() {
			st.Date = s.snapshot.Date.Format(time.DateOnly)
		}
	}
	if s.lastErr != nil {
		st.Error = s.lastErr.Error()
	}
	return st
}

func NewStore(client adapters.RateClient, anchor string) *Store {
	return &Store{client: client, anchor: anchor}
}

package domain

import (
	"maps"
	"slices"
	"time"
)

// Snapshot is a point-in-time set of rates relative to Anchor.
// It is never mutated after NewSnapshot returns.
type Snapshot struct {
	Anchor string
	Date   time.Time
	rates  map[string]float64
}

// NewSnapshot copies rates, dropping entries that cannot take part in a cross-rate.
func NewSnapshot(anchor string, date time.Time, rates map[string]float64) Snapshot {
	cp := make(map[string]float64, len(rates))
	for code, v := range rates {
		if v > 0 {
			cp[code] = v
		}
	}
	return Snapshot{Anchor: anchor, Date: date, rates: cp}
}

// Rate returns the anchor-relative rate for code.
func (s Snapshot) Rate(code string) (float64, bool) {
	v, ok := s.rates[code]
	return v, ok
}

// Lookup is Rate with an explicit error for a missing code.
func (s Snapshot) Lookup(code string) (float64, error) {
	v, ok := s.rates[code]
	if !ok {
		return 0, &CurrencyNotAvailableError{Code: code}
	}
	return v, nil
}

// Codes returns the snapshot currency codes in ascending order.
func (s Snapshot) Codes() []string {
	codes := slices.Collect(maps.Keys(s.rates))
	slices.Sort(codes)
	return codes
}

func (s Snapshot) Len() int { return len(s.rates) }

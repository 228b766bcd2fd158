package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPair_KeyAndLabel(t *testing.T) {
	p := Pair{Base: "USD", Target: "EUR"}
	require.Equal(t, PairKey("USD_EUR"), p.Key())
	require.Equal(t, "USD/EUR", p.Label())
}

func TestParsePairKey(t *testing.T) {
	p, err := ParsePairKey("EUR_JPY")
	require.NoError(t, err)
	require.Equal(t, Pair{Base: "EUR", Target: "JPY"}, p)

	for _, raw := range []string{"", "EURJPY", "_JPY", "EUR_"} {
		_, err = ParsePairKey(raw)
		require.ErrorIs(t, err, ErrInvalidPairKey, raw)
	}
}

func TestNewSnapshot_DropsNonPositiveAndCopies(t *testing.T) {
	src := map[string]float64{"USD": 1, "EUR": 0.9, "BAD": 0, "NEG": -2}
	s := NewSnapshot("USD", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), src)

	src["EUR"] = 42
	v, ok := s.Rate("EUR")
	require.True(t, ok)
	require.InDelta(t, 0.9, v, 1e-9)

	_, ok = s.Rate("BAD")
	require.False(t, ok)
	require.Equal(t, []string{"EUR", "USD"}, s.Codes())
	require.Equal(t, 2, s.Len())
}

func TestSnapshot_Lookup(t *testing.T) {
	s := NewSnapshot("USD", time.Time{}, map[string]float64{"USD": 1})

	v, err := s.Lookup("USD")
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-9)

	_, err = s.Lookup("XYZ")
	require.ErrorIs(t, err, ErrCurrencyNotAvailable)
	var notAvailable *CurrencyNotAvailableError
	require.ErrorAs(t, err, &notAvailable)
	require.Equal(t, "XYZ", notAvailable.Code)
}

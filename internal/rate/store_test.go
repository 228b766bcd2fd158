package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"fxwidget/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStore_BeforeLoad_Unavailable(t *testing.T) {
	s := NewStore(new(MockRateClient), "USD")

	_, err := s.Snapshot()
	require.ErrorIs(t, err, domain.ErrRatesUnavailable)
	require.Empty(t, s.Codes())
	require.False(t, s.Has("USD"))

	_, err = s.Rate("USD")
	require.ErrorIs(t, err, domain.ErrRatesUnavailable)

	_, err = s.Convert("1", "USD", "EUR")
	require.ErrorIs(t, err, domain.ErrRatesUnavailable)

	st := s.Status()
	require.False(t, st.Available)
	require.Equal(t, "USD", st.Anchor)
}

func TestStore_Load_Success(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetSnapshot", mock.Anything, "USD").Return(usdSnapshot(), nil).Once()
	s := NewStore(client, "USD")

	require.NoError(t, s.Load(context.Background()))

	require.Equal(t, []string{"EUR", "GBP", "JPY", "USD"}, s.Codes())
	require.True(t, s.Has("JPY"))
	v, err := s.Rate("EUR")
	require.NoError(t, err)
	require.InDelta(t, 0.9, v, 1e-9)

	_, err = s.Rate("XYZ")
	require.ErrorIs(t, err, domain.ErrCurrencyNotAvailable)

	res, err := s.Convert("100", "USD", "EUR")
	require.NoError(t, err)
	require.Equal(t, "90.00 EUR", res)

	st := s.Status()
	require.True(t, st.Available)
	require.Equal(t, 4, st.Currencies)
	require.Equal(t, "2024-05-01", st.Date)
	require.Empty(t, st.Error)
	client.AssertExpectations(t)
}

func TestStore_Load_FailureKeepsPreviousSnapshot(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetSnapshot", mock.Anything, "USD").Return(usdSnapshot(), nil).Once()
	client.On("GetSnapshot", mock.Anything, "USD").Return(nil, errors.New("connection refused")).Once()
	s := NewStore(client, "USD")

	require.NoError(t, s.Load(context.Background()))
	err := s.Load(context.Background())
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to load rates for \"USD\"")

	require.True(t, s.Has("EUR"))
	st := s.Status()
	require.True(t, st.Available)
	require.Equal(t, "connection refused", st.Error)
	client.AssertExpectations(t)
}

func TestStore_Load_ReplacesSnapshotWholesale(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetSnapshot", mock.Anything, "USD").Return(usdSnapshot(), nil).Once()
	client.On("GetSnapshot", mock.Anything, "USD").
		Return(domain.NewSnapshot("USD", testDate, map[string]float64{"USD": 1, "CHF": 0.88}), nil).Once()
	s := NewStore(client, "USD")

	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Load(context.Background()))

	require.Equal(t, []string{"CHF", "USD"}, s.Codes())
	require.False(t, s.Has("EUR"))
}

func TestStore_Load_FailureWithoutSnapshot(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetSnapshot", mock.Anything, "USD").Return(nil, errors.New("boom")).Once()
	s := NewStore(client, "USD")

	require.Error(t, s.Load(context.Background()))

	st := s.Status()
	require.False(t, st.Available)
	require.Equal(t, "boom", st.Error)
}

func TestStore_Load_UndatedSnapshot(t *testing.T) {
	client := new(MockRateClient)
	undated := domain.NewSnapshot("USD", time.Time{}, map[string]float64{"USD": 1, "EUR": 0.9})
	client.On("GetSnapshot", mock.Anything, "USD").Return(undated, nil).Once()
	store := NewStore(client, "USD")

	require.NoError(t, store.Load(context.Background()))
	st := store.Status()
	require.True(t, st.Available)
	require.Empty(t, st.Date)

	got, err := store.Convert("100", "USD", "EUR")
	require.NoError(t, err)
	require.Equal(t, "90.00 EUR", got)
}

package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExchangeRateClient_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "base": "USD",
            "date": "2024-05-01",
            "rates": {"USD": 1, "EUR": 0.92, "JPY": 150.0}
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/v4/latest/")

	snap, err := c.GetSnapshot(context.Background(), "USD")
	require.NoError(t, err)
	require.Equal(t, "/v4/latest/USD", gotPath)
	require.Equal(t, "USD", snap.Anchor)
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), snap.Date)
	require.Equal(t, 3, snap.Len())
	eur, ok := snap.Rate("EUR")
	require.True(t, ok)
	require.InDelta(t, 0.92, eur, 1e-9)
}

func TestExchangeRateClient_RFC3339Date(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date": "2024-05-01T23:30:00-02:00", "rates": {"EUR": 0.9}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/latest")

	snap, err := c.GetSnapshot(context.Background(), "GBP")
	require.NoError(t, err)
	require.Equal(t, "GBP", snap.Anchor)
	require.Equal(t, "2024-05-02", snap.Date.Format(time.DateOnly))
}

func TestExchangeRateClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/latest")

	_, err := c.GetSnapshot(context.Background(), "USD")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
	require.Contains(t, err.Error(), "USD")
}

func TestExchangeRateClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/latest")

	_, err := c.GetSnapshot(context.Background(), "USD")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode response for currency \"USD\"")
}

func TestExchangeRateClient_EmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base": "USD", "date": "2024-05-01", "rates": {}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/latest")

	_, err := c.GetSnapshot(context.Background(), "USD")
	require.ErrorIs(t, err, errEmptyRates)
}

func TestExchangeRateClient_UnusableDateIsIgnored(t *testing.T) {
	for name, payload := range map[string]string{
		"garbage": `{"date": "yesterday", "rates": {"EUR": 0.9}}`,
		"missing": `{"rates": {"EUR": 0.9}}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(payload))
			}))
			t.Cleanup(srv.Close)

			c := NewExchangeRateClient(srv.Client(), srv.URL+"/latest")

			snap, err := c.GetSnapshot(context.Background(), "USD")
			require.NoError(t, err)
			require.True(t, snap.Date.IsZero())
			require.Equal(t, []string{"EUR"}, snap.Codes())
		})
	}
}

func TestExchangeRateClient_BaseURLParseError(t *testing.T) {
	c := NewExchangeRateClient(&http.Client{}, "http://::1]")
	_, err := c.GetSnapshot(context.Background(), "USD")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse base URL")
}

package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fxwidget/internal/domain"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var errEmptyRates = errors.New("response contains no rates")

type ExchangeRateClient struct {
	http    *http.Client
	baseURL string
}

type apiResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// GetSnapshot requests <baseURL>/<anchor> and decodes it into a snapshot.
func (c *ExchangeRateClient) GetSnapshot(ctx context.Context, anchor string) (domain.Snapshot, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + anchor

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to create request for currency %q: %w", anchor, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to execute request for currency %q: %w", anchor, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Snapshot{}, fmt.Errorf("unexpected status code %d for currency %q: %s", resp.StatusCode, anchor, resp.Status)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to decode response for currency %q: %w", anchor, err)
	}

	if len(body.Rates) == 0 {
		return domain.Snapshot{}, fmt.Errorf("currency %q: %w", anchor, errEmptyRates)
	}

	// only the historical display needs the date; rates stay usable without it
	date, err := parseDate(body.Date)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"anchor": anchor, "date": body.Date}).Warn("Snapshot date ignored")
		date = time.Time{}
	}

	base := body.Base
	if base == "" {
		base = anchor
	}
	return domain.NewSnapshot(base, date, body.Rates), nil
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func NewExchangeRateClient(httpClient *http.Client, baseURL string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, baseURL: baseURL}
}

package rate

import (
	"context"
	"time"

	"fxwidget/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) GetSnapshot(ctx context.Context, anchor string) (domain.Snapshot, error) {
	args := m.Called(ctx, anchor)
	snap, _ := args.Get(0).(domain.Snapshot)
	return snap, args.Error(1)
}

type MockLoader struct{ mock.Mock }

func (m *MockLoader) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var testDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func usdSnapshot() domain.Snapshot {
	return domain.NewSnapshot("USD", testDate, map[string]float64{
		"USD": 1,
		"EUR": 0.9,
		"JPY": 150,
		"GBP": 0.8,
	})
}

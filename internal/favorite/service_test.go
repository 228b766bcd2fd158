package favorite

import (
	"context"
	"errors"
	"testing"

	"fxwidget/internal/adapters/memory"
	"fxwidget/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFavoriteRepository struct{ mock.Mock }

func (m *MockFavoriteRepository) Load(ctx context.Context) ([]domain.PairKey, error) {
	args := m.Called(ctx)
	keys, _ := args.Get(0).([]domain.PairKey)
	return keys, args.Error(1)
}

func (m *MockFavoriteRepository) Save(ctx context.Context, keys []domain.PairKey) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func TestService_AddTwice_DoesNotGrow(t *testing.T) {
	repo := memory.NewFavoriteRepository()
	svc := NewService(repo)
	ctx := context.Background()

	fav, err := svc.Add(ctx, "USD", "EUR")
	require.NoError(t, err)
	require.Equal(t, domain.PairKey("USD_EUR"), fav.Key)
	require.Equal(t, "USD/EUR", fav.Label)

	_, err = svc.Add(ctx, "USD", "EUR")
	require.ErrorIs(t, err, domain.ErrDuplicateFavorite)

	keys, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.PairKey{"USD_EUR"}, keys)
}

func TestService_Render_InsertionOrder(t *testing.T) {
	svc := NewService(memory.NewFavoriteRepository())
	ctx := context.Background()

	_, err := svc.Add(ctx, "USD", "EUR")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "EUR", "JPY")
	require.NoError(t, err)

	favorites, err := svc.Render(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	require.Equal(t, "USD/EUR", favorites[0].Label)
	require.Equal(t, "EUR/JPY", favorites[1].Label)
	require.Equal(t, "EUR", favorites[1].Base)
	require.Equal(t, "JPY", favorites[1].Target)
}

func TestService_Render_ReflectsExistingStore(t *testing.T) {
	svc := NewService(memory.NewFavoriteRepository("GBP_USD", "broken", "USD_GBP"))

	favorites, err := svc.Render(context.Background())
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	require.Equal(t, "GBP/USD", favorites[0].Label)
	require.Equal(t, "USD/GBP", favorites[1].Label)
}

func TestService_Render_Empty(t *testing.T) {
	favorites, err := NewService(memory.NewFavoriteRepository()).Render(context.Background())
	require.NoError(t, err)
	require.NotNil(t, favorites)
	require.Empty(t, favorites)
}

func TestService_Find(t *testing.T) {
	svc := NewService(memory.NewFavoriteRepository("USD_EUR"))
	ctx := context.Background()

	fav, err := svc.Find(ctx, "USD_EUR")
	require.NoError(t, err)
	require.Equal(t, "USD", fav.Base)

	_, err = svc.Find(ctx, "EUR_USD")
	require.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}

func TestService_Add_LoadError_NoSave(t *testing.T) {
	repo := new(MockFavoriteRepository)
	repo.On("Load", mock.Anything).Return(nil, errors.New("storage offline")).Once()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), "USD", "EUR")
	require.ErrorContains(t, err, "failed to load favorites")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestService_Add_SaveError(t *testing.T) {
	repo := new(MockFavoriteRepository)
	repo.On("Load", mock.Anything).Return([]domain.PairKey{"EUR_JPY"}, nil).Once()
	repo.On("Save", mock.Anything, []domain.PairKey{"EUR_JPY", "USD_EUR"}).Return(errors.New("disk full")).Once()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), "USD", "EUR")
	require.ErrorContains(t, err, "failed to save favorites")
	repo.AssertExpectations(t)
}

func TestService_Add_DuplicateDoesNotSave(t *testing.T) {
	repo := new(MockFavoriteRepository)
	repo.On("Load", mock.Anything).Return([]domain.PairKey{"USD_EUR"}, nil).Once()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), "USD", "EUR")
	require.ErrorIs(t, err, domain.ErrDuplicateFavorite)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

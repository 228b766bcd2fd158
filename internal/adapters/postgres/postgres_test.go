package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"fxwidget/internal/adapters/postgres"
	"fxwidget/internal/domain"
	"fxwidget/internal/platform/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.Exec(ctx, `truncate table kv_store`)
	require.NoError(t, err)

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		migrateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return db.Migrate(migrateCtx, dsn) == nil
	}, 20*time.Second, 500*time.Millisecond)

	pgContainer = pg
	pgConnStr = dsn
}

func TestFavoriteRepository_Load_EmptyWhenMissing(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewFavoriteRepository(pool)

	keys, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, keys)
	require.NotNil(t, keys)
}

func TestFavoriteRepository_SaveThenLoad_KeepsOrder(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewFavoriteRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.PairKey{"USD_EUR", "EUR_JPY"}))

	keys, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.PairKey{"USD_EUR", "EUR_JPY"}, keys)
}

func TestFavoriteRepository_Save_OverwritesWholeValue(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewFavoriteRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.PairKey{"USD_EUR"}))
	require.NoError(t, repo.Save(ctx, []domain.PairKey{"GBP_USD", "USD_EUR"}))

	keys, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.PairKey{"GBP_USD", "USD_EUR"}, keys)

	var rows int
	require.NoError(t, pool.QueryRow(ctx, `select count(*) from kv_store`).Scan(&rows))
	require.Equal(t, 1, rows)
}

func TestFavoriteRepository_Load_MalformedValue(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewFavoriteRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `insert into kv_store(key, value) values ('favoritePairs', '{"not": "a list"}'::jsonb)`)
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode")
}

func TestFavoriteRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewFavoriteRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.Error(t, err)
	require.Error(t, repo.Save(ctx, []domain.PairKey{"USD_EUR"}))
}

package db

import (
	"context"
	"fmt"
	"fxwidget/internal/config"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// favorites traffic is light; idle connections are released quickly
const maxConnIdleTime = 5 * time.Minute

// Connect opens a pool for the favorites store and checks it with a ping.
func Connect(ctx context.Context, cfg config.DbServer) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to parse db config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnIdleTime = maxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping db at %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return pool, nil
}

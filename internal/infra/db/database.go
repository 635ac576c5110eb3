package db

import (
	"context"
	"fmt"
	"time"

	"github.com/bothrasports-ops/arena-manager/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds the pool without pinging: a missing or wrong connection
// config must not prevent startup; store calls fail at call time instead.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = 20
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

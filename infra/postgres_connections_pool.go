package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_CONNECTIONS = 50

func NewPostgresConnectionPool(ctx context.Context, pgConfig PgConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(pgConfig.GetConnectionString())
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	cfg.MaxConns = MAX_CONNECTIONS
	if pgConfig.MaxPoolConnections > 0 {
		cfg.MaxConns = int32(pgConfig.MaxPoolConnections)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("conn.Ping error: %w", err)
	}
	return pool, nil
}

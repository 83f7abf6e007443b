package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pricetracker/internal/config"
)

// Connect builds a pgx pool from the given config and verifies the
// connection with a ping. The caller owns the pool and closes it on
// shutdown.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	if !cfg.Valid() {
		return nil, fmt.Errorf("database config incomplete: DB_USER/DB_HOST/DB_PORT/DB_NAME must be set")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Package db manages the PostgreSQL connection pool and schema
// migrations.
package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Errors.
var (
	ErrParseConfig     = errors.New("db: failed to parse connection string")
	ErrConnect         = errors.New("db: failed to open connection")
	ErrSetDialect      = errors.New("db: failed to set migration dialect")
	ErrApplyMigrations = errors.New("db: failed to apply migrations")
)

// Config holds connection pool parameters.
type Config struct {
	ConnectionString string
	MaxConns         int32
	MinConns         int32
	MaxConnIdleTime  time.Duration
	MaxConnLifetime  time.Duration
	RetryAttempts    int
	RetryInterval    time.Duration
}

// DefaultConfig returns pool settings suitable for a small web service.
func DefaultConfig(connString string) Config {
	return Config{
		ConnectionString: connString,
		MaxConns:         10,
		MinConns:         2,
		MaxConnIdleTime:  10 * time.Minute,
		MaxConnLifetime:  30 * time.Minute,
		RetryAttempts:    3,
		RetryInterval:    2 * time.Second,
	}
}

// Connect establishes a connection pool, retrying with linear backoff
// so the service survives a database that comes up slightly later than
// the process itself.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime

	attempts := max(cfg.RetryAttempts, 1)
	for i := range attempts {
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			// Ping to catch auth and permission failures that only
			// surface on first use.
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnect, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}

	return nil, ErrConnect
}

// Shutdown returns a hook that closes the pool on server shutdown.
func Shutdown(pool *pgxpool.Pool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		pool.Close()
		return nil
	}
}

// Healthcheck returns a probe suitable for the readiness endpoint.
func Healthcheck(pool *pgxpool.Pool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return pool.Ping(ctx)
	}
}

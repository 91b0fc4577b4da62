// Package database owns the process-wide PostgreSQL handle.
//
// The pool is built once at startup and passed to the repositories;
// nothing in the application reaches for a global connection.
package database

import (
	"context"
	"time"

	"fsanano/store-api/internal/config"

	"github.com/cockroachdb/errors"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

const pingTimeout = 10 * time.Second

type Database struct {
	Pool *pgxpool.Pool
	log  zerolog.Logger
}

// New connects to PostgreSQL and verifies the connection with a ping.
// Errors are returned to the caller as-is; there is no retry.
func New(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*Database, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database config")
	}

	// Statement tracing is only worth its noise at debug level.
	if log.GetLevel() <= zerolog.DebugLevel {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(log.With().Str("component", "pgx").Logger()),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Msg("connected to database")

	return &Database{Pool: pool, log: log}, nil
}

func (db *Database) Close() {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
}

// Package database is the PostgreSQL persistence layer.
// File: database/connection.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-ctf-event/logger"
)

// OpenPool creates a pgx connection pool without contacting the server.
// Connections are dialed on first use, so a database that is down at
// startup can come back later without a restart.
func OpenPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, dsn)
}

// NewPool creates a pgx connection pool for PostgreSQL and pings it.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := OpenPool(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info.Println("[database] PostgreSQL connected")
	return pool, nil
}

package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"yolo-transcript/internal/app/repository"
)

// Config tunes the connection pool
type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxLife  time.Duration
}

// PostgresDB implements repository.Store on top of lib/pq
type PostgresDB struct {
	db *sql.DB
}

var _ repository.Store = (*PostgresDB)(nil)

// NewPostgresDB opens a connection pool. sql.Open does not dial, call Ping
// to verify connectivity.
func NewPostgresDB(cfg Config) (*PostgresDB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLife > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLife)
	}
	return &PostgresDB{db: db}, nil
}

// NewFromDB wraps an existing handle
func NewFromDB(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

// Ping verifies the database is reachable
func (pdb *PostgresDB) Ping(ctx context.Context) error {
	return pdb.db.PingContext(ctx)
}

// DB exposes the underlying handle for migrations
func (pdb *PostgresDB) DB() *sql.DB {
	return pdb.db
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

// dbError tags a driver error with one of the database sentinels. Both stay
// matchable with errors.Is.
func dbError(kind error, op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

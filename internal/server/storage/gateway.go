// Package storage owns the connection lifecycle to the SQLite store and its
// idempotent schema initialization. Repositories check a connection out per
// operation via Acquire and are responsible for releasing it on every exit
// path.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/akarpovs/useradmin/internal/common"
	"github.com/akarpovs/useradmin/internal/logging"
	"github.com/akarpovs/useradmin/internal/server/storage/migrations"
)

type Gateway struct {
	db     *sql.DB
	logger logging.Logger
}

// Open creates the connection pool for the SQLite database at dsn. The pool
// is lazy: the file is only touched on the first acquired connection, so a
// bad location surfaces as a connection failure on first use rather than
// here.
func Open(dsn string, logger logging.Logger) (*Gateway, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorConnection, err)
	}

	// SQLite serializes writers itself; a small pool is enough and keeps
	// shared-cache in-memory databases alive between operations.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	return &Gateway{db: db, logger: logger.With("module", "storage")}, nil
}

// Acquire checks a connection out of the pool. The caller must release it
// with conn.Close() on every exit path, including errors.
func (g *Gateway) Acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		g.logger.Error(ctx, "database connection failed", "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrorConnection, err)
	}
	return conn, nil
}

// EnsureSchema creates the users table if absent. It is idempotent and meant
// to run once at process startup; the caller logs a failure and keeps
// serving, letting subsequent operations fail with connection-class errors.
func (g *Gateway) EnsureSchema(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorConnection, err)
	}

	if err := goose.UpContext(ctx, g.db, "."); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorConnection, err)
	}

	g.logger.Info(ctx, "user table ensured in database")
	return nil
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

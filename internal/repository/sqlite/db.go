// Package sqlite contains SQLite implementations of repository interfaces,
// for single-user and local deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/and161185/flashrecall/internal/migrate"
	"github.com/and161185/flashrecall/migrations"
)

// DB wraps the database handle shared by all SQLite repositories.
type DB struct{ conn *sql.DB }

// Open opens (creating if needed) the database at dsn. Use ":memory:" for a
// throwaway store. When migrateSchema is set the embedded schema is applied.
func Open(ctx context.Context, dsn string, migrateSchema bool, log *zap.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One writer at a time; an in-memory database also lives on a single connection.
	conn.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000"} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if migrateSchema {
		if err := migrate.UpDB(ctx, conn, "sqlite3", migrations.SQLiteDir, log); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return &DB{conn: conn}, nil
}

// Close closes the database.
func (db *DB) Close() error { return db.conn.Close() }

func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()
	return fn(tx)
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

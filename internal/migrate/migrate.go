// Package migrate applies embedded SQL migrations on startup.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/and161185/flashrecall/migrations"
)

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// Up runs all pending Postgres migrations against dsn.
func Up(ctx context.Context, dsn string, log *zap.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return UpDB(ctx, db, "postgres", migrations.PostgresDir, log)
}

// UpDB runs the migrations in dir of the embedded FS on an open database.
func UpDB(ctx context.Context, db *sql.DB, dialect, dir string, log *zap.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if log == nil {
		log = zap.NewNop()
	}
	goose.SetLogger(gooseLogger{log.Sugar()})
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", dialect, err)
	}
	return nil
}

type gooseLogger struct{ s *zap.SugaredLogger }

func (l gooseLogger) Printf(format string, v ...any) { l.s.Infof(format, v...) }

// Fatalf logs at error level and returns. goose also reports the failure as an
// error, which UpDB hands back to the caller.
func (l gooseLogger) Fatalf(format string, v ...any) { l.s.Errorf(format, v...) }

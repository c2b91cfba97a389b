// Package migrations embeds the goose SQL migrations for each storage backend.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite/*.sql.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Directories inside FS, per goose dialect.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
)

// SQL dialects supported by the journal.
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB is a journal connection pool together with the dialect specifics the
// repositories need.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB connects to the journal database selected by cfg.DSN: PostgreSQL
// for postgres:// and postgresql:// URLs, SQLite otherwise.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// pingJournal checks a freshly opened pool and closes it on failure.
func pingJournal(ctx context.Context, conn *sql.DB, log *logger.Logger) error {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("journal database is unreachable")
		conn.Close()
		return fmt.Errorf("ping journal database: %w", err)
	}

	return nil
}

// Migrate brings the journal schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

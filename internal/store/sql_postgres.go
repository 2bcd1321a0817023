package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Pool limits of the PostgreSQL journal.
const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4
)

// NewConnectPostgres parses cfg.DSN with pgx, opens a database/sql pool on
// top of it and pings the server.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		log.Err(err).Msg("invalid postgres DSN")
		return nil, fmt.Errorf("parse postgres DSN: %w", err)
	}

	conn := stdlib.OpenDB(*connConfig)
	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)

	if err = pingJournal(ctx, conn, log); err != nil {
		return nil, err
	}

	log.Info().Str("host", connConfig.Host).Str("database", connConfig.Database).Msg("journal connected to postgres")
	return &DB{
		DB:                 conn,
		dialect:            dialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}, nil
}

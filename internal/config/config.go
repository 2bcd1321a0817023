// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// note keeper binaries. It is populated by merging values from environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the record directory and the optional journal database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the HTTP API as seen by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the settings of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-note-keeper"`

	// TokenDuration specifies how long a token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"1.0.0"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the journal database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the record directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the activity journal.
type DB struct {
	// DSN selects the journal backend. A "postgres://" or "postgresql://"
	// URI connects to PostgreSQL, any other non-empty value is an SQLite file
	// path. An empty DSN disables the journal.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for user records.
type Files struct {
	// RecordsDir is the directory holding one record file per username.
	// Env: STORAGE_FILES_RECORDS_DIR
	RecordsDir string `env:"RECORDS_DIR" envDefault:"./storage"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Adapter holds the client's view of the HTTP API.
type Adapter struct {
	// HTTPAddress is the base address of the API. A missing scheme means
	// plain http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JournalRetention is the age after which journal events are removed.
	// Env: WORKERS_JOURNAL_RETENTION
	JournalRetention time.Duration `env:"JOURNAL_RETENTION" envDefault:"720h"`

	// JournalCleanupInterval is how often the journal cleaner runs.
	// Env: WORKERS_JOURNAL_CLEANUP_INTERVAL
	JournalCleanupInterval time.Duration `env:"JOURNAL_CLEANUP_INTERVAL" envDefault:"1h"`
}

// GetStructuredConfig loads, merges and validates the server configuration
// from the following sources (later sources override non-zero fields):
//  1. Environment variables, with defaults
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetClientConfig loads the same sources as [GetStructuredConfig] but only
// validates what the terminal client needs.
func GetClientConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validateClient(); err != nil {
		return nil, err
	}

	return cfg, nil
}

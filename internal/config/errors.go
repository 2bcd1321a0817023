package config

import (
	"errors"

	"github.com/spf13/pflag"
)

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty records directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates non-positive worker intervals while
	// the journal is enabled.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ErrHelp is returned by the config loaders when -h or --help was passed.
var ErrHelp = pflag.ErrHelp

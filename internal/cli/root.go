// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements notesctl, the administration tool that works on
// record files directly, without a running server.
package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrPasswordMismatch is returned by check-password for a wrong password.
var ErrPasswordMismatch = errors.New("password does not match")

const defaultRecordsDir = "./storage"

// options is shared by every command of one command tree.
type options struct {
	dir     string
	verbose bool

	storage store.RecordStorage
	logger  *logger.Logger
}

// NewRootCommand builds the notesctl command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "notesctl",
		Short: "Inspect and manage note keeper record files",
		Long: `notesctl works on the record directory of a note keeper server.

Every user has one binary record file named after the username. The
commands below read or create those files directly, so they can be used
while the server is stopped or for offline inspection.

Examples:
  # Create a user
  notesctl create alice12 hunter22

  # Check a password
  notesctl check-password alice12 hunter22

  # Print a record as JSON
  notesctl dump alice12 --json --dir /var/lib/notes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return o.open()
		},
	}

	addStorageFlags(root.PersistentFlags(), o)

	root.AddCommand(
		newCreateCommand(o),
		newExistsCommand(o),
		newCheckPasswordCommand(o),
		newDumpCommand(o),
	)

	return root
}

func addStorageFlags(flags *pflag.FlagSet, o *options) {
	flags.StringVar(&o.dir, "dir", defaultRecordsDir, "directory holding the record files")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log storage activity to stderr")
}

func (o *options) open() error {
	o.logger = logger.NewConsoleLogger("notesctl", o.verbose)
	o.logger.Debug().Str("dir", o.dir).Msg("opening record directory")

	storage, err := store.NewRecordFileStorage(o.dir, o.logger)
	if err != nil {
		return err
	}

	o.storage = storage
	return nil
}

func checkUsername(username string) error {
	if !validators.IsValidIdentifier(username) {
		return fmt.Errorf("%w: %q", validators.ErrInvalidIdentifier, username)
	}

	return nil
}

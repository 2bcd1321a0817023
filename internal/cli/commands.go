package cli

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCreateCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "create <user> <password>",
		Short: "Create an empty record for a new user",
		Long: `Creates the record file of a new user with an empty secret note and no
notes. Both the username and the password must match [a-zA-Z0-9]{5,31}.
An existing user is never overwritten.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password := args[0], args[1]
			if err := validators.ValidateCredentials(username, password); err != nil {
				return err
			}

			ctx := cmd.Context()
			if o.storage.Exists(ctx, username) {
				return fmt.Errorf("%w: %s", store.ErrLoginAlreadyExists, username)
			}

			if err := o.storage.Create(ctx, username, password); err != nil {
				return err
			}

			o.logger.Info().Str("username", username).Msg("record created")
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Created user "+color.CyanString(username))
			return nil
		},
	}
}

func newExistsCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <user>",
		Short: "Report whether a user record exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			if err := checkUsername(username); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.storage.Exists(cmd.Context(), username) {
				fmt.Fprintln(out, color.GreenString("✓")+" User "+color.CyanString(username)+" exists")
				return nil
			}

			fmt.Fprintln(out, color.YellowString("⚠")+" User "+color.CyanString(username)+" does not exist")
			return nil
		},
	}
}

func newCheckPasswordCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check-password <user> <password>",
		Short: "Compare a password with the stored one",
		Long: `Compares the password with the one stored in the user's record. Only
the password prefix of the record file is read. The command fails when the
password does not match.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password := args[0], args[1]
			if err := validators.ValidateCredentials(username, password); err != nil {
				return err
			}

			ok, err := o.storage.CheckPassword(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), color.RedString("✗")+" Wrong password for "+color.CyanString(username))
				return ErrPasswordMismatch
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Password matches")
			return nil
		},
	}
}

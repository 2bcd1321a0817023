package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-keeper/internal/record"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// recordDump is the JSON form of a record. Binary fields are hex encoded.
type recordDump struct {
	Username    string     `json:"username"`
	Password    string     `json:"password"`
	SecretNote  string     `json:"secret_note"`
	Key         string     `json:"key"`
	Notes       []noteDump `json:"notes"`
	SharedNotes []noteDump `json:"shared_notes"`
}

type noteDump struct {
	ID   int    `json:"id"`
	Note string `json:"note"`
	Info string `json:"info"`
}

func newDumpCommand(o *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dump <user>",
		Short: "Decode and print a user record",
		Long: `Decodes the record file of a user and prints every field. The secret
note and its key are printed hex encoded, as stored.

Examples:
  notesctl dump alice12
  notesctl dump alice12 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			if err := checkUsername(username); err != nil {
				return err
			}

			rec, err := o.storage.Load(cmd.Context(), username)
			if err != nil {
				return err
			}

			dump := newRecordDump(rec)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dump)
			}

			printRecordDump(cmd.OutOrStdout(), dump)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

func newRecordDump(rec *record.Record) recordDump {
	return recordDump{
		Username:    rec.Username,
		Password:    rec.Password,
		SecretNote:  hex.EncodeToString(rec.SecretNote),
		Key:         hex.EncodeToString(rec.Key),
		Notes:       dumpNotes(rec.Notes),
		SharedNotes: dumpNotes(rec.SharedNotes),
	}
}

func dumpNotes(notes []record.Note) []noteDump {
	out := make([]noteDump, 0, len(notes))
	for i, n := range notes {
		out = append(out, noteDump{ID: i, Note: n.Text, Info: n.Info})
	}

	return out
}

func printRecordDump(w io.Writer, d recordDump) {
	fmt.Fprintln(w, color.CyanString("Record")+" "+d.Username+":")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-13s %s\n", "Password:", color.GreenString(d.Password))
	fmt.Fprintf(w, "  %-13s %s\n", "Secret note:", orDash(d.SecretNote))
	fmt.Fprintf(w, "  %-13s %s\n", "Key:", orDash(d.Key))

	printNotes(w, "Notes", d.Notes)
	printNotes(w, "Shared notes", d.SharedNotes)
}

func printNotes(w io.Writer, title string, notes []noteDump) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s (%d):\n", color.CyanString(title), len(notes))
	for _, n := range notes {
		fmt.Fprintf(w, "  %s. %s  %s\n", color.YellowString("%d", n.ID), n.Note, color.New(color.Faint).Sprint(n.Info))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/cli"
	"github.com/fatih/color"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}

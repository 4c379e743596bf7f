// Command loadout-manpage writes the loadout man page to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/loadout/cmd/loadout"
	"github.com/arthur-debert/loadout/internal/version"
)

func main() {
	rootCmd := loadout.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LOADOUT",
		Section: "1",
		Source:  "loadout " + version.Version,
		Manual:  "loadout manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

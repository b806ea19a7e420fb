package main

import (
	"os"

	"github.com/mattsolo1/grove-core/cli"

	"github.com/mattsolo1/grove-explorer/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"explorer",
		"Edit nested file/folder trees with per-folder expand state",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewShowCmd())
	rootCmd.AddCommand(cmd.NewAddCmd())
	rootCmd.AddCommand(cmd.NewRmCmd())
	rootCmd.AddCommand(cmd.NewRenameCmd())
	rootCmd.AddCommand(cmd.NewFindCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

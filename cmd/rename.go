package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-explorer/cmd/config"
	"github.com/mattsolo1/grove-explorer/pkg/tree"
)

func NewRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [id] [name]",
		Short: "Change the name of a file or folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := config.InitExplorer()
			if err != nil {
				return err
			}

			id := tree.ID(args[0])
			if _, err := ex.Session.Rename(id, args[1]); err != nil {
				return fmt.Errorf("rename %s: %w", id, err)
			}

			path, err := ex.Save()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed [%s] to %s (%s)\n", id, args[1], path)
			return nil
		},
	}

	// Add global flags
	config.AddGlobalFlags(cmd)

	return cmd
}

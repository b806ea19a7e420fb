package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-explorer/cmd/config"
	"github.com/mattsolo1/grove-explorer/pkg/tree"
)

func NewRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete"},
		Short:   "Delete a file or folder with everything inside it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := config.InitExplorer()
			if err != nil {
				return err
			}

			id := tree.ID(args[0])
			before := ex.Session.Current().Tree.Len()
			state, err := ex.Session.Delete(id)
			if err != nil {
				return fmt.Errorf("delete %s: %w", id, err)
			}

			path, err := ex.Save()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries (%s)\n", before-state.Tree.Len(), path)
			return nil
		},
	}

	// Add global flags
	config.AddGlobalFlags(cmd)

	return cmd
}

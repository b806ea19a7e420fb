package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-explorer/cmd/config"
)

func NewFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [name]",
		Short: "Find entries by name (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := config.InitExplorer()
			if err != nil {
				return err
			}
			t := ex.Session.Current().Tree

			matches := t.FindByName(args[0])
			if len(matches) == 0 {
				return fmt.Errorf("no entry named %q", args[0])
			}

			out := cmd.OutOrStdout()
			for _, n := range matches {
				ancestors, _ := t.PathTo(n.ID())
				names := make([]string, 0, len(ancestors)+1)
				for _, id := range ancestors {
					a, _ := t.FindNode(id)
					names = append(names, a.Name())
				}
				names = append(names, n.Name())
				fmt.Fprintf(out, "%s  [%s]\n", strings.Join(names, "/"), n.ID())
			}
			return nil
		},
	}

	// Add global flags
	config.AddGlobalFlags(cmd)

	return cmd
}

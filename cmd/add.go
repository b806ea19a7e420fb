package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-explorer/cmd/config"
	"github.com/mattsolo1/grove-explorer/pkg/session"
	"github.com/mattsolo1/grove-explorer/pkg/tree"
)

func NewAddCmd() *cobra.Command {
	var (
		addFolder bool
		addRoot   bool
		addID     string
	)

	cmd := &cobra.Command{
		Use:   "add [parent-id] [name]",
		Short: "Add a file or folder",
		Long: `Add a file or folder as the last child of a folder.

With --root the new entry is added at the top level and only the name is
given. New entries get a random id unless --id is set.

Examples:
  # Add a file under folder 1
  explorer add 1 notes.txt

  # Add a folder
  explorer add 1 components --folder

  # Add a top-level folder
  explorer add --root assets --folder`,
		Args: func(cmd *cobra.Command, args []string) error {
			if addRoot {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := config.InitExplorer()
			if err != nil {
				return err
			}

			name := args[len(args)-1]
			id := tree.ID(addID)
			if id == "" {
				id = tree.NewID()
			}
			var node *tree.Node
			if addFolder {
				node = tree.NewContainer(id, name)
			} else {
				node = tree.NewLeaf(id, name)
			}

			parent := "top level"
			if addRoot {
				_, err = ex.Session.Update(func(st session.State) (session.State, error) {
					t, err := st.Tree.AppendRoot(node)
					if err != nil {
						return st, err
					}
					return session.State{Tree: t, Index: st.Index}, nil
				})
			} else {
				parent = args[0]
				_, err = ex.Session.Insert(tree.ID(parent), node)
			}
			if err != nil {
				return fmt.Errorf("add %s: %w", name, err)
			}

			path, err := ex.Save()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s [%s] under %s (%s)\n", name, id, parent, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&addFolder, "folder", false, "Create a folder instead of a file")
	cmd.Flags().BoolVar(&addRoot, "root", false, "Add at the top level")
	cmd.Flags().StringVar(&addID, "id", "", "Explicit id for the new entry")

	// Add global flags
	config.AddGlobalFlags(cmd)

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-explorer/cmd/config"
	"github.com/mattsolo1/grove-explorer/pkg/tree"
)

func NewShowCmd() *cobra.Command {
	var (
		showExpand []string
		showReveal []string
		showAll    bool
		showJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the visible part of the tree",
		Long: `Print the tree as a file explorer would display it.

Folders start collapsed. Open them with --expand, open every folder with
--all, or make a nested entry visible with --reveal.

Examples:
  # Top-level entries only
  explorer show

  # Open two folders by id
  explorer show --expand 1,4

  # Open everything and print rows as JSON
  explorer show --all --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := config.InitExplorer()
			if err != nil {
				return err
			}
			s := ex.Session

			if showAll {
				s.ExpandAll()
			}
			for _, id := range showExpand {
				if !s.Current().Tree.Contains(tree.ID(id)) {
					return fmt.Errorf("expand %s: %w", id, &tree.NotFoundError{ID: tree.ID(id)})
				}
				if !s.Current().Index.IsExpanded(tree.ID(id)) {
					s.Toggle(tree.ID(id))
				}
			}
			for _, id := range showReveal {
				if _, err := s.Reveal(tree.ID(id)); err != nil {
					return fmt.Errorf("reveal %s: %w", id, err)
				}
			}

			if showJSON {
				return renderJSON(cmd.OutOrStdout(), s.Visible())
			}
			return renderText(cmd.OutOrStdout(), s.Visible(), ex.Config.Indent)
		},
	}

	cmd.Flags().StringSliceVar(&showExpand, "expand", nil, "Folder ids to open")
	cmd.Flags().StringSliceVar(&showReveal, "reveal", nil, "Node ids whose ancestors should be opened")
	cmd.Flags().BoolVar(&showAll, "all", false, "Open every folder")
	cmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")

	// Add global flags
	config.AddGlobalFlags(cmd)

	return cmd
}

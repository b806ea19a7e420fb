package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/mattsolo1/grove-explorer/pkg/projection"
	"github.com/mattsolo1/grove-explorer/pkg/tree"
)

// entryJSON is the --json form of a visible row.
type entryJSON struct {
	ID       tree.ID   `json:"id"`
	Name     string    `json:"name"`
	IsFolder bool      `json:"isFolder"`
	Expanded bool      `json:"expanded"`
	Depth    int       `json:"depth"`
	Path     []tree.ID `json:"path"`
	Key      string    `json:"key"`
}

// renderText writes one line per entry: folders get a "+" (closed) or "-"
// (open) marker, files are aligned under them.
func renderText(w io.Writer, entries iter.Seq[projection.Entry], indent int) error {
	for e := range entries {
		marker := "  "
		if e.Node.IsContainer() {
			marker = "+ "
			if e.Expanded {
				marker = "- "
			}
		}
		pad := strings.Repeat(" ", indent*e.Depth)
		if _, err := fmt.Fprintf(w, "%s%s%s  [%s]\n", pad, marker, e.Node.Name(), e.Node.ID()); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, entries iter.Seq[projection.Entry]) error {
	rows := []entryJSON{}
	for e := range entries {
		path := e.Path
		if path == nil {
			path = []tree.ID{}
		}
		rows = append(rows, entryJSON{
			ID:       e.Node.ID(),
			Name:     e.Node.Name(),
			IsFolder: e.Node.IsContainer(),
			Expanded: e.Expanded,
			Depth:    e.Depth,
			Path:     path,
			Key:      e.Key(),
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

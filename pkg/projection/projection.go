// Package projection turns a tree and a visibility index into the flat list
// of rows a file explorer displays.
package projection

import (
	"iter"
	"slices"
	"strings"

	"github.com/mattsolo1/grove-explorer/pkg/tree"
	"github.com/mattsolo1/grove-explorer/pkg/visibility"
)

// Entry is a single visible row.
type Entry struct {
	Node  *tree.Node
	Depth int       // 0 for top-level nodes
	Path  []tree.ID // ancestor ids, outermost first, excluding Node

	// Expanded is true for containers whose children follow this entry.
	Expanded bool
}

// Key returns a position-independent key for the row, built from the
// ancestry path and the node id.
func (e Entry) Key() string {
	var sb strings.Builder
	for _, id := range e.Path {
		sb.WriteString(string(id))
		sb.WriteByte('/')
	}
	sb.WriteString(string(e.Node.ID()))
	return sb.String()
}

// Visible yields the visible nodes of t in pre-order, starting at the
// top-level nodes. The implicit root is never emitted. Leaves are always
// emitted; a container's children are walked only if idx expands it.
//
// The sequence is computed lazily and may be ranged over again.
func Visible(t tree.Tree, idx visibility.Index) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		walk(t.Roots(), 0, nil, idx, yield)
	}
}

// Collect materializes a sequence of entries.
func Collect(seq iter.Seq[Entry]) []Entry {
	return slices.Collect(seq)
}

func walk(nodes []*tree.Node, depth int, path []tree.ID, idx visibility.Index, yield func(Entry) bool) bool {
	for _, n := range nodes {
		expanded := n.IsContainer() && idx.IsExpanded(n.ID())
		entry := Entry{
			Node:     n,
			Depth:    depth,
			Path:     slices.Clone(path),
			Expanded: expanded,
		}
		if !yield(entry) {
			return false
		}
		if !expanded {
			continue
		}
		childPath := append(slices.Clip(path), n.ID())
		if !walk(n.Children(), depth+1, childPath, idx, yield) {
			return false
		}
	}
	return true
}

// Package visibility tracks which tree nodes are expanded. State is keyed by
// node id and lives outside the tree, so editing the tree never resets it
// and one folder's state never leaks into another's.
package visibility

import (
	"maps"
	"slices"

	"github.com/mattsolo1/grove-explorer/pkg/tree"
)

// Index is an immutable set of expanded node ids. A missing id is collapsed.
// Only expanded ids are stored, so collapsing an id removes its entry. The
// zero value is an empty index.
type Index struct {
	expanded map[tree.ID]struct{}
}

// New returns an index with the given ids expanded.
func New(ids ...tree.ID) Index {
	if len(ids) == 0 {
		return Index{}
	}
	expanded := make(map[tree.ID]struct{}, len(ids))
	for _, id := range ids {
		expanded[id] = struct{}{}
	}
	return Index{expanded: expanded}
}

// IsExpanded reports whether id is expanded. Unknown ids are collapsed.
func (idx Index) IsExpanded(id tree.ID) bool {
	_, ok := idx.expanded[id]
	return ok
}

// Toggle flips the state of id. An id never seen before becomes expanded.
func (idx Index) Toggle(id tree.ID) Index {
	return idx.Set(id, !idx.IsExpanded(id))
}

// Set forces the state of id.
func (idx Index) Set(id tree.ID, expanded bool) Index {
	if idx.IsExpanded(id) == expanded {
		return idx
	}
	next := idx.clone()
	if expanded {
		next[id] = struct{}{}
	} else {
		delete(next, id)
	}
	return fromSet(next)
}

// Expand marks id as expanded.
func (idx Index) Expand(id tree.ID) Index {
	return idx.Set(id, true)
}

// Collapse marks id as collapsed.
func (idx Index) Collapse(id tree.ID) Index {
	return idx.Set(id, false)
}

// Reconcile drops every entry whose id no longer exists in t. Callers run it
// after any edit that can delete nodes.
func (idx Index) Reconcile(t tree.Tree) Index {
	if len(idx.expanded) == 0 {
		return idx
	}
	present := t.IDs()
	var next map[tree.ID]struct{}
	for id := range idx.expanded {
		if _, ok := present[id]; ok {
			continue
		}
		if next == nil {
			next = idx.clone()
		}
		delete(next, id)
	}
	if next == nil {
		return idx
	}
	return fromSet(next)
}

// ExpandAll expands every container in t. Existing entries are kept.
func (idx Index) ExpandAll(t tree.Tree) Index {
	next := idx.clone()
	for _, n := range t.All() {
		if n.IsContainer() {
			next[n.ID()] = struct{}{}
		}
	}
	return fromSet(next)
}

// CollapseAll returns an empty index.
func (idx Index) CollapseAll() Index {
	return Index{}
}

// CollapseSubtree collapses n and every container below it, so reopening n
// shows only its direct children.
func (idx Index) CollapseSubtree(n *tree.Node) Index {
	next := idx.clone()
	var walk func(*tree.Node)
	walk = func(n *tree.Node) {
		delete(next, n.ID())
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)
	return fromSet(next)
}

// Reveal expands every ancestor of id so that the node shows up in the
// projection. It returns false if id is not in t.
func (idx Index) Reveal(t tree.Tree, id tree.ID) (Index, bool) {
	path, ok := t.PathTo(id)
	if !ok {
		return idx, false
	}
	for _, ancestor := range path {
		idx = idx.Expand(ancestor)
	}
	return idx, true
}

// Len returns the number of expanded ids.
func (idx Index) Len() int {
	return len(idx.expanded)
}

// IDs returns the expanded ids in sorted order.
func (idx Index) IDs() []tree.ID {
	return slices.Sorted(maps.Keys(idx.expanded))
}

// Equal reports whether both indexes expand exactly the same ids.
func (idx Index) Equal(other Index) bool {
	if len(idx.expanded) != len(other.expanded) {
		return false
	}
	for id := range idx.expanded {
		if !other.IsExpanded(id) {
			return false
		}
	}
	return true
}

func (idx Index) clone() map[tree.ID]struct{} {
	next := make(map[tree.ID]struct{}, len(idx.expanded)+1)
	maps.Copy(next, idx.expanded)
	return next
}

// fromSet keeps empty indexes identical to the zero value.
func fromSet(expanded map[tree.ID]struct{}) Index {
	if len(expanded) == 0 {
		return Index{}
	}
	return Index{expanded: expanded}
}

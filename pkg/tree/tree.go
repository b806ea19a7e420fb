package tree

import (
	"iter"
	"slices"

	"golang.org/x/text/cases"
)

// Tree is an immutable, ordered forest of top-level nodes hanging off an
// implicit root. The implicit root has no id and is never emitted. The zero
// value is the empty tree.
type Tree struct {
	roots []*Node
}

// New builds a tree from its top-level nodes. It fails if a node is nil or an
// id occurs more than once anywhere in the forest.
func New(roots ...*Node) (Tree, error) {
	seen := make(map[ID]struct{})
	for _, r := range roots {
		if r == nil {
			return Tree{}, ErrNilNode
		}
		if err := collectIDs(r, seen); err != nil {
			return Tree{}, err
		}
	}
	return Tree{roots: slices.Clone(roots)}, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(roots ...*Node) Tree {
	t, err := New(roots...)
	if err != nil {
		panic(err)
	}
	return t
}

// Roots returns the top-level nodes. The slice is a copy.
func (t Tree) Roots() []*Node {
	return slices.Clone(t.roots)
}

// IsEmpty reports whether the tree has no nodes.
func (t Tree) IsEmpty() bool {
	return len(t.roots) == 0
}

// Len returns the total number of nodes in the tree.
func (t Tree) Len() int {
	size := 0
	for _, r := range t.roots {
		size += r.Size()
	}
	return size
}

// All yields every node with its depth in depth-first pre-order. Top-level
// nodes have depth 0.
func (t Tree) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for _, r := range t.roots {
			if !r.walk(0, yield) {
				return
			}
		}
	}
}

// FindNode returns the first node in pre-order whose id matches.
func (t Tree) FindNode(id ID) (*Node, bool) {
	for _, n := range t.All() {
		if n.id == id {
			return n, true
		}
	}
	return nil, false
}

// Contains reports whether a node with the given id exists.
func (t Tree) Contains(id ID) bool {
	_, ok := t.FindNode(id)
	return ok
}

// IDs returns the set of every id in the tree.
func (t Tree) IDs() map[ID]struct{} {
	ids := make(map[ID]struct{})
	for _, n := range t.All() {
		ids[n.id] = struct{}{}
	}
	return ids
}

// PathTo returns the ids of the ancestors of id, outermost first. The node
// itself is not included; a top-level node has an empty path.
func (t Tree) PathTo(id ID) ([]ID, bool) {
	var path []ID
	var search func(nodes []*Node) bool
	search = func(nodes []*Node) bool {
		for _, n := range nodes {
			if n.id == id {
				return true
			}
			path = append(path, n.id)
			if search(n.children) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}
	if !search(t.roots) {
		return nil, false
	}
	return slices.Clip(path), true
}

// FindByName returns every node whose name matches name under Unicode case
// folding, in pre-order.
func (t Tree) FindByName(name string) []*Node {
	fold := cases.Fold()
	want := fold.String(name)
	var matches []*Node
	for _, n := range t.All() {
		if fold.String(n.name) == want {
			matches = append(matches, n)
		}
	}
	return matches
}

// collectIDs adds every id under n to seen, failing on the first repeat.
func collectIDs(n *Node, seen map[ID]struct{}) error {
	var err error
	n.walk(0, func(_ int, c *Node) bool {
		if c == nil {
			err = ErrNilNode
			return false
		}
		if _, dup := seen[c.id]; dup {
			err = &DuplicateIDError{ID: c.id}
			return false
		}
		seen[c.id] = struct{}{}
		return true
	})
	return err
}

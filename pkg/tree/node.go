package tree

import (
	"slices"

	"github.com/google/uuid"
)

// ID identifies a node for its whole lifetime. IDs are unique across a tree
// and are never reassigned.
type ID string

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Kind categorizes a node as either a container (folder) or a leaf (file).
type Kind int

const (
	KindLeaf Kind = iota
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindLeaf:
		return "leaf"
	}
	return "unknown"
}

// Node is a single entry of the tree. Nodes are immutable once built: every
// edit on a Tree returns new nodes along the edited path and reuses the rest.
type Node struct {
	id       ID
	name     string
	kind     Kind
	children []*Node // always nil for leaves
}

// NewLeaf creates a leaf node.
func NewLeaf(id ID, name string) *Node {
	return &Node{id: id, name: name, kind: KindLeaf}
}

// NewContainer creates a container node owning the given children, in order.
// The children slice is copied.
func NewContainer(id ID, name string, children ...*Node) *Node {
	return &Node{
		id:       id,
		name:     name,
		kind:     KindContainer,
		children: slices.Clone(children),
	}
}

func (n *Node) ID() ID       { return n.id }
func (n *Node) Name() string { return n.name }
func (n *Node) Kind() Kind   { return n.kind }

// IsContainer reports whether the node may own children.
func (n *Node) IsContainer() bool {
	return n.kind == KindContainer
}

// Children returns the node's children. The returned slice is a copy, but the
// nodes themselves are shared.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Size returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Size() int {
	size := 1
	for _, c := range n.children {
		size += c.Size()
	}
	return size
}

// withChildren returns a shallow copy of n owning children.
func (n *Node) withChildren(children []*Node) *Node {
	return &Node{id: n.id, name: n.name, kind: n.kind, children: children}
}

// withName returns a shallow copy of n with a new name.
func (n *Node) withName(name string) *Node {
	return &Node{id: n.id, name: name, kind: n.kind, children: n.children}
}

// walk visits n and its descendants in pre-order. It stops as soon as fn
// returns false and reports whether the walk ran to completion.
func (n *Node) walk(depth int, fn func(depth int, n *Node) bool) bool {
	if !fn(depth, n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

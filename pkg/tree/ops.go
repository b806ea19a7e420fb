package tree

// Mutations never touch existing nodes. Each one rebuilds the nodes on the
// path from the edited node up to the top level and shares every other
// subtree with the input tree. A failed mutation returns the input tree.

// InsertChild appends child as the last child of the container parentID.
func (t Tree) InsertChild(parentID ID, child *Node) (Tree, error) {
	if child == nil {
		return t, ErrNilNode
	}
	if err := t.checkFresh(child); err != nil {
		return t, err
	}

	roots, found, err := replaceNode(t.roots, parentID, func(parent *Node) (*Node, error) {
		if !parent.IsContainer() {
			return nil, &NotAContainerError{ID: parent.id, Name: parent.name}
		}
		children := make([]*Node, len(parent.children), len(parent.children)+1)
		copy(children, parent.children)
		return parent.withChildren(append(children, child)), nil
	})
	if err != nil {
		return t, err
	}
	if !found {
		return t, &NotFoundError{ID: parentID}
	}
	return Tree{roots: roots}, nil
}

// AppendRoot adds node as the last top-level node.
func (t Tree) AppendRoot(node *Node) (Tree, error) {
	if node == nil {
		return t, ErrNilNode
	}
	if err := t.checkFresh(node); err != nil {
		return t, err
	}
	roots := make([]*Node, len(t.roots), len(t.roots)+1)
	copy(roots, t.roots)
	return Tree{roots: append(roots, node)}, nil
}

// DeleteNode removes the first node in pre-order whose id matches, together
// with its whole subtree, and returns the removed node. Top-level nodes can
// be deleted; removing the last one leaves an empty tree.
func (t Tree) DeleteNode(id ID) (Tree, *Node, error) {
	roots, removed := removeNode(t.roots, id)
	if removed == nil {
		return t, nil, &NotFoundError{ID: id}
	}
	return Tree{roots: roots}, removed, nil
}

// Rename changes the display name of a node.
func (t Tree) Rename(id ID, name string) (Tree, error) {
	roots, found, _ := replaceNode(t.roots, id, func(n *Node) (*Node, error) {
		return n.withName(name), nil
	})
	if !found {
		return t, &NotFoundError{ID: id}
	}
	return Tree{roots: roots}, nil
}

// checkFresh fails if any id inside n already exists in t or repeats inside n.
func (t Tree) checkFresh(n *Node) error {
	seen := t.IDs()
	return collectIDs(n, seen)
}

// replaceNode finds the first pre-order match for id among nodes and swaps it
// for fn's result. The returned slice is new only when a match was found;
// unrelated siblings keep their identity.
func replaceNode(nodes []*Node, id ID, fn func(*Node) (*Node, error)) ([]*Node, bool, error) {
	for i, n := range nodes {
		var replacement *Node
		if n.id == id {
			r, err := fn(n)
			if err != nil {
				return nodes, true, err
			}
			replacement = r
		} else {
			children, found, err := replaceNode(n.children, id, fn)
			if err != nil {
				return nodes, true, err
			}
			if !found {
				continue
			}
			replacement = n.withChildren(children)
		}
		out := make([]*Node, len(nodes))
		copy(out, nodes)
		out[i] = replacement
		return out, true, nil
	}
	return nodes, false, nil
}

// removeNode drops the first pre-order match for id from nodes. It returns
// the rebuilt slice and the removed node, or the input and nil on a miss.
func removeNode(nodes []*Node, id ID) ([]*Node, *Node) {
	for i, n := range nodes {
		if n.id == id {
			out := make([]*Node, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			return append(out, nodes[i+1:]...), n
		}
		children, removed := removeNode(n.children, id)
		if removed == nil {
			continue
		}
		out := make([]*Node, len(nodes))
		copy(out, nodes)
		out[i] = n.withChildren(children)
		return out, removed
	}
	return nodes, nil
}

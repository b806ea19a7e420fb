package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds:
//
//	src (1)
//	├── a.txt (2)
//	└── lib (4)
//	    └── x.go (5)
//	docs (6)
//	└── readme.md (7)
func fixture(t *testing.T) Tree {
	t.Helper()
	tr, err := New(
		NewContainer("1", "src",
			NewLeaf("2", "a.txt"),
			NewContainer("4", "lib",
				NewLeaf("5", "x.go"),
			),
		),
		NewContainer("6", "docs",
			NewLeaf("7", "readme.md"),
		),
	)
	require.NoError(t, err)
	return tr
}

func childIDs(n *Node) []ID {
	ids := []ID{}
	for _, c := range n.Children() {
		ids = append(ids, c.ID())
	}
	return ids
}

func preorder(tr Tree) []ID {
	var ids []ID
	for _, n := range tr.All() {
		ids = append(ids, n.ID())
	}
	return ids
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(
		NewContainer("1", "src", NewLeaf("2", "a.txt")),
		NewLeaf("2", "b.txt"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)

	var dup *DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, ID("2"), dup.ID)
}

func TestNewRejectsNilNodes(t *testing.T) {
	_, err := New(NewContainer("1", "src", nil))
	assert.ErrorIs(t, err, ErrNilNode)

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestZeroTreeIsEmpty(t *testing.T) {
	var tr Tree
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Len())
	_, ok := tr.FindNode("1")
	assert.False(t, ok)
}

func TestAllIsPreOrderWithDepth(t *testing.T) {
	tr := fixture(t)

	type row struct {
		ID    ID
		Depth int
	}
	var got []row
	for depth, n := range tr.All() {
		got = append(got, row{n.ID(), depth})
	}
	want := []row{{"1", 0}, {"2", 1}, {"4", 1}, {"5", 2}, {"6", 0}, {"7", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, tr.Len())
}

func TestAllStopsEarly(t *testing.T) {
	tr := fixture(t)
	count := 0
	for range tr.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestFindNode(t *testing.T) {
	tr := fixture(t)

	n, ok := tr.FindNode("5")
	require.True(t, ok)
	assert.Equal(t, "x.go", n.Name())
	assert.False(t, n.IsContainer())

	_, ok = tr.FindNode("missing")
	assert.False(t, ok)
	assert.True(t, tr.Contains("7"))
	assert.False(t, tr.Contains("8"))
}

func TestFindNodeTieBreakIsFirstInPreOrder(t *testing.T) {
	// New refuses duplicate ids, so build the broken tree by hand.
	first := NewLeaf("dup", "first")
	second := NewLeaf("dup", "second")
	tr := Tree{roots: []*Node{
		NewContainer("1", "src", first),
		second,
	}}

	n, ok := tr.FindNode("dup")
	require.True(t, ok)
	assert.Same(t, first, n)

	next, removed, err := tr.DeleteNode("dup")
	require.NoError(t, err)
	assert.Same(t, first, removed)
	assert.Equal(t, []ID{"1", "dup"}, preorder(next))
	remaining, _ := next.FindNode("dup")
	assert.Same(t, second, remaining)
}

func TestPathTo(t *testing.T) {
	tr := fixture(t)

	path, ok := tr.PathTo("5")
	require.True(t, ok)
	assert.Equal(t, []ID{"1", "4"}, path)

	path, ok = tr.PathTo("6")
	require.True(t, ok)
	assert.Empty(t, path)

	_, ok = tr.PathTo("nope")
	assert.False(t, ok)
}

func TestFindByNameFoldsCase(t *testing.T) {
	tr := fixture(t)

	matches := tr.FindByName("README.MD")
	require.Len(t, matches, 1)
	assert.Equal(t, ID("7"), matches[0].ID())

	assert.Empty(t, tr.FindByName("nothing"))
}

func TestIDs(t *testing.T) {
	tr := fixture(t)
	ids := tr.IDs()
	assert.Len(t, ids, 6)
	assert.Contains(t, ids, ID("4"))
}

func TestNodeAccessorsDoNotExposeInternals(t *testing.T) {
	tr := fixture(t)
	src, _ := tr.FindNode("1")

	kids := src.Children()
	kids[0] = NewLeaf("99", "intruder")

	assert.Equal(t, ID("2"), src.Child(0).ID())
	assert.Equal(t, 2, src.NumChildren())

	roots := tr.Roots()
	roots[0] = nil
	assert.Equal(t, ID("1"), tr.Roots()[0].ID())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "container", KindContainer.String())
	assert.Equal(t, "leaf", KindLeaf.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[ID]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

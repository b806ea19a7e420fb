package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-explorer/pkg/snapshot"
	"github.com/mattsolo1/grove-explorer/pkg/tree"
)

const seedData = `[
  {"id": "1", "name": "src", "isFolder": true, "children": [
    {"id": "2", "name": "a.txt", "isFolder": false},
    {"id": "4", "name": "lib", "isFolder": true, "children": [
      {"id": "5", "name": "x.go", "isFolder": false}
    ]}
  ]},
  {"id": "6", "name": "README.md", "isFolder": false}
]`

func writeSeed(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(seedData), 0644))
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShowCollapsed(t *testing.T) {
	seed := writeSeed(t)

	out, err := run(t, NewShowCmd(), "--file", seed)
	require.NoError(t, err)
	assert.Equal(t, "+ src  [1]\n  README.md  [6]\n", out)
}

func TestShowExpand(t *testing.T) {
	seed := writeSeed(t)

	out, err := run(t, NewShowCmd(), "--file", seed, "--expand", "1")
	require.NoError(t, err)
	want := "- src  [1]\n" +
		"    a.txt  [2]\n" +
		"  + lib  [4]\n" +
		"  README.md  [6]\n"
	assert.Equal(t, want, out)
}

func TestShowRevealJSON(t *testing.T) {
	seed := writeSeed(t)

	out, err := run(t, NewShowCmd(), "--file", seed, "--reveal", "5", "--json")
	require.NoError(t, err)

	var rows []entryJSON
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, tree.ID("5"), rows[3].ID)
	assert.Equal(t, 2, rows[3].Depth)
	assert.Equal(t, []tree.ID{"1", "4"}, rows[3].Path)
	assert.Equal(t, "1/4/5", rows[3].Key)
	assert.Equal(t, []tree.ID{}, rows[0].Path)
}

func TestShowUnknownFolder(t *testing.T) {
	seed := writeSeed(t)

	_, err := run(t, NewShowCmd(), "--file", seed, "--expand", "404")
	assert.ErrorIs(t, err, tree.ErrNotFound)
}

func TestAddWritesSnapshot(t *testing.T) {
	seed := writeSeed(t)

	out, err := run(t, NewAddCmd(), "--file", seed, "--id", "7", "4", "y.go")
	require.NoError(t, err)
	assert.Contains(t, out, "Added y.go [7] under 4")

	tr, err := snapshot.ReadFile(seed)
	require.NoError(t, err)
	lib, ok := tr.FindNode("4")
	require.True(t, ok)
	assert.Equal(t, tree.ID("7"), lib.Child(lib.NumChildren()-1).ID())
}

func TestAddRootFolderToOut(t *testing.T) {
	seed := writeSeed(t)
	out := filepath.Join(t.TempDir(), "edited.yml")

	_, err := run(t, NewAddCmd(), "--file", seed, "--out", out, "--root", "--folder", "--id", "9", "assets")
	require.NoError(t, err)

	edited, err := snapshot.ReadFile(out)
	require.NoError(t, err)
	roots := edited.Roots()
	require.Len(t, roots, 3)
	assert.True(t, roots[2].IsContainer())

	original, err := snapshot.ReadFile(seed)
	require.NoError(t, err)
	assert.Equal(t, 5, original.Len())
}

func TestAddUnderFileFails(t *testing.T) {
	seed := writeSeed(t)

	_, err := run(t, NewAddCmd(), "--file", seed, "2", "nope.txt")
	assert.ErrorIs(t, err, tree.ErrNotAContainer)

	tr, err := snapshot.ReadFile(seed)
	require.NoError(t, err)
	assert.Equal(t, 5, tr.Len(), "failed edits are not saved")
}

func TestRm(t *testing.T) {
	seed := writeSeed(t)

	out, err := run(t, NewRmCmd(), "--file", seed, "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 entries")

	tr, err := snapshot.ReadFile(seed)
	require.NoError(t, err)
	assert.False(t, tr.Contains("5"))

	_, err = run(t, NewRmCmd(), "--file", seed, "4")
	assert.ErrorIs(t, err, tree.ErrNotFound)
}

func TestRename(t *testing.T) {
	seed := writeSeed(t)

	_, err := run(t, NewRenameCmd(), "--file", seed, "5", "main.go")
	require.NoError(t, err)

	tr, err := snapshot.ReadFile(seed)
	require.NoError(t, err)
	n, _ := tr.FindNode("5")
	assert.Equal(t, "main.go", n.Name())
}

func TestFind(t *testing.T) {
	seed := writeSeed(t)

	out, err := run(t, NewFindCmd(), "--file", seed, "X.GO")
	require.NoError(t, err)
	assert.Equal(t, "src/lib/x.go  [5]\n", out)

	_, err = run(t, NewFindCmd(), "--file", seed, "missing")
	assert.Error(t, err)
}

func TestMissingSnapshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := run(t, NewShowCmd(), "--file", filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

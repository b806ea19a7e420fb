// Package snapshot reads and writes seed trees in the explorer's data file
// shape:
//
//	[
//	  {"id": "1", "name": "src", "isFolder": true, "children": [
//	    {"id": "2", "name": "a.txt", "isFolder": false}
//	  ]}
//	]
//
// YAML is accepted too, since JSON is a subset of it.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-explorer/pkg/tree"
)

// Format selects the encoding used by Encode.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Record is the serialized form of a node.
type Record struct {
	ID       RecordID `yaml:"id,omitempty" json:"id,omitempty"`
	Name     string   `yaml:"name" json:"name"`
	IsFolder bool     `yaml:"isFolder" json:"isFolder"`
	Children []Record `yaml:"children,omitempty" json:"children,omitempty"`
}

// RecordID accepts both string and numeric ids.
type RecordID string

// UnmarshalYAML keeps the scalar text as-is, so `id: 1` and `id: "1"` match.
func (id *RecordID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", value.Line)
	}
	*id = RecordID(value.Value)
	return nil
}

// DecodeError reports a structural problem in a snapshot. Path is the chain
// of names leading to the offending record.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode snapshot: %v", e.Err)
	}
	return fmt.Sprintf("decode snapshot at %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrLeafWithChildren is wrapped by a DecodeError when a file record lists children.
var ErrLeafWithChildren = errors.New("non-folder entry has children")

// Decode reads a snapshot. Records without an id get a fresh one. An empty
// document yields an empty tree.
func Decode(r io.Reader) (tree.Tree, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return tree.Tree{}, nil
		}
		return tree.Tree{}, &DecodeError{Err: err}
	}
	return Build(records)
}

// Build turns records into a tree.
func Build(records []Record) (tree.Tree, error) {
	roots := make([]*tree.Node, 0, len(records))
	for _, rec := range records {
		n, err := toNode(rec, "")
		if err != nil {
			return tree.Tree{}, err
		}
		roots = append(roots, n)
	}
	t, err := tree.New(roots...)
	if err != nil {
		return tree.Tree{}, &DecodeError{Err: err}
	}
	return t, nil
}

func toNode(rec Record, parent string) (*tree.Node, error) {
	path := rec.Name
	if parent != "" {
		path = parent + "/" + rec.Name
	}
	id := tree.ID(rec.ID)
	if id == "" {
		id = tree.NewID()
	}
	if !rec.IsFolder {
		if len(rec.Children) > 0 {
			return nil, &DecodeError{Path: path, Err: ErrLeafWithChildren}
		}
		return tree.NewLeaf(id, rec.Name), nil
	}
	children := make([]*tree.Node, 0, len(rec.Children))
	for _, c := range rec.Children {
		child, err := toNode(c, path)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return tree.NewContainer(id, rec.Name, children...), nil
}

// Records converts a tree to its serialized form.
func Records(t tree.Tree) []Record {
	roots := t.Roots()
	records := make([]Record, 0, len(roots))
	for _, n := range roots {
		records = append(records, toRecord(n))
	}
	return records
}

func toRecord(n *tree.Node) Record {
	rec := Record{
		ID:       RecordID(n.ID()),
		Name:     n.Name(),
		IsFolder: n.IsContainer(),
	}
	for _, c := range n.Children() {
		rec.Children = append(rec.Children, toRecord(c))
	}
	return rec
}

// Encode writes t in the given format.
func Encode(w io.Writer, t tree.Tree, format Format) error {
	records := Records(t)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}

// ReadFile decodes the snapshot stored at path.
func ReadFile(path string) (tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return tree.Tree{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return tree.Tree{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// WriteFile encodes t to path, picking the format from its extension. The
// file is replaced atomically.
func WriteFile(path string, t tree.Tree) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, t, FormatFromPath(path)); err != nil {
		tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("node not found")
	// ErrNotAContainer is matched by every *NotAContainerError.
	ErrNotAContainer = errors.New("node is not a container")
	// ErrDuplicateID is matched by every *DuplicateIDError.
	ErrDuplicateID = errors.New("duplicate node id")
	// ErrNilNode is returned when a nil node is inserted.
	ErrNilNode = errors.New("nil node")
)

// NotFoundError reports an operation that referenced an id absent from the tree.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotAContainerError reports an attempt to add a child under a leaf.
type NotAContainerError struct {
	ID   ID
	Name string
}

func (e *NotAContainerError) Error() string {
	return fmt.Sprintf("node %q (%s) is not a container", e.ID, e.Name)
}

func (e *NotAContainerError) Is(target error) bool {
	return target == ErrNotAContainer
}

// DuplicateIDError reports an inserted subtree carrying an id that already
// exists in the tree, or that appears twice in a loaded snapshot.
type DuplicateIDError struct {
	ID ID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("node id %q already exists", e.ID)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

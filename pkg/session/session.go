// Package session holds the current explorer state and serializes edits to
// it. Each edit is computed from the latest state and published with a
// compare-and-swap, so readers never see a half-applied change and no edit
// is computed from a stale snapshot.
package session

import (
	"iter"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-explorer/pkg/projection"
	"github.com/mattsolo1/grove-explorer/pkg/tree"
	"github.com/mattsolo1/grove-explorer/pkg/visibility"
)

// State is an immutable (tree, visibility) pair.
type State struct {
	Tree  tree.Tree
	Index visibility.Index
}

// Visible returns the rows to display for this state.
func (s State) Visible() iter.Seq[projection.Entry] {
	return projection.Visible(s.Tree, s.Index)
}

// Session owns the current State. It is safe for concurrent use.
type Session struct {
	current atomic.Pointer[State]
	logger  logrus.FieldLogger
}

// New starts a session from a seed tree with every folder collapsed.
func New(seed tree.Tree, logger logrus.FieldLogger) *Session {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		logger = l
	}
	s := &Session{logger: logger}
	s.current.Store(&State{Tree: seed})
	return s
}

// Current returns the latest published state.
func (s *Session) Current() State {
	return *s.current.Load()
}

// Load returns the latest published state by reference, for use with
// CompareAndSwap. The pointed-to State must not be modified.
func (s *Session) Load() *State {
	return s.current.Load()
}

// CompareAndSwap publishes next only if old is still the current state.
func (s *Session) CompareAndSwap(old *State, next State) bool {
	return s.current.CompareAndSwap(old, &next)
}

// Update applies fn to the latest state and publishes the result. If another
// writer publishes first, fn runs again on the newer state. A failing fn
// leaves the session unchanged and its error is returned as-is.
func (s *Session) Update(fn func(State) (State, error)) (State, error) {
	for attempt := 1; ; attempt++ {
		old := s.current.Load()
		next, err := fn(*old)
		if err != nil {
			return *old, err
		}
		if s.current.CompareAndSwap(old, &next) {
			if attempt > 1 {
				s.logger.WithField("attempts", attempt).Debug("session update retried after concurrent write")
			}
			return next, nil
		}
	}
}

// Insert adds child under parentID.
func (s *Session) Insert(parentID tree.ID, child *tree.Node) (State, error) {
	state, err := s.Update(func(st State) (State, error) {
		t, err := st.Tree.InsertChild(parentID, child)
		if err != nil {
			return st, err
		}
		return State{Tree: t, Index: st.Index}, nil
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{"parent": parentID, "error": err}).Debug("insert rejected")
		return state, err
	}
	s.logger.WithFields(logrus.Fields{
		"parent": parentID,
		"id":     child.ID(),
		"name":   child.Name(),
	}).Debug("node inserted")
	return state, nil
}

// Delete removes a node and its subtree, and drops their visibility entries
// in the same transition.
func (s *Session) Delete(id tree.ID) (State, error) {
	state, err := s.Update(func(st State) (State, error) {
		t, _, err := st.Tree.DeleteNode(id)
		if err != nil {
			return st, err
		}
		return State{Tree: t, Index: st.Index.Reconcile(t)}, nil
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{"id": id, "error": err}).Debug("delete rejected")
		return state, err
	}
	s.logger.WithField("id", id).Debug("node deleted")
	return state, nil
}

// Rename changes a node's display name.
func (s *Session) Rename(id tree.ID, name string) (State, error) {
	return s.Update(func(st State) (State, error) {
		t, err := st.Tree.Rename(id, name)
		if err != nil {
			return st, err
		}
		return State{Tree: t, Index: st.Index}, nil
	})
}

// Toggle flips the expanded state of id. Toggling is always allowed, even for
// leaves or unknown ids.
func (s *Session) Toggle(id tree.ID) State {
	state, _ := s.Update(func(st State) (State, error) {
		return State{Tree: st.Tree, Index: st.Index.Toggle(id)}, nil
	})
	return state
}

// Reveal expands the ancestors of id so it becomes visible.
func (s *Session) Reveal(id tree.ID) (State, error) {
	return s.Update(func(st State) (State, error) {
		idx, ok := st.Index.Reveal(st.Tree, id)
		if !ok {
			return st, &tree.NotFoundError{ID: id}
		}
		return State{Tree: st.Tree, Index: idx}, nil
	})
}

// ExpandAll expands every container.
func (s *Session) ExpandAll() State {
	state, _ := s.Update(func(st State) (State, error) {
		return State{Tree: st.Tree, Index: st.Index.ExpandAll(st.Tree)}, nil
	})
	return state
}

// CollapseAll collapses every container.
func (s *Session) CollapseAll() State {
	state, _ := s.Update(func(st State) (State, error) {
		return State{Tree: st.Tree, Index: st.Index.CollapseAll()}, nil
	})
	return state
}

// Visible returns the rows to display for the current state.
func (s *Session) Visible() iter.Seq[projection.Entry] {
	return s.Current().Visible()
}

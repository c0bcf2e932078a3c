package merge

import (
	"fmt"

	"github.com/paulo-o3h/GitMerge-for-Unity/internal/scene"
)

// Action is the hook a merge action exposes to the conditional-existence
// mechanism. EnsureExists materializes whatever the action owns, typically
// by calling InstantiateCopy and RecordCopy back on the session, and must
// be idempotent: the session guards against cycles, not against repeated
// invocation.
type Action interface {
	EnsureExists()
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func()

// EnsureExists calls f.
func (f ActionFunc) EnsureExists() { f() }

// AddPending declares that action will bring a node into existence once it
// runs, before it actually has. Other decisions that reference the node out
// of order can then force it early via EnsureExists. A node has exactly one
// pending owner; redeclaring returns ErrDuplicatePending.
func (s *Session) AddPending(n scene.Node, action Action) error {
	if n == nil || action == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[n]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePending, s.eng.NameOf(n))
	}
	s.pending[n] = action
	return nil
}

// EnsureExists runs the action that owns a node's future existence, so that
// a subsequent ResolveCounterpart on the node succeeds. The entry is
// removed once the action has run; the pending table is a forward
// declaration, not a residency list. Returns ErrUnknownPending for nodes
// nothing declared and ErrCyclicDependency when pending actions force each
// other in a loop.
func (s *Session) EnsureExists(n scene.Node) error {
	if n == nil {
		return ErrUnknownPending
	}
	s.mu.Lock()
	action, ok := s.pending[n]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownPending, s.eng.NameOf(n))
	}
	if s.forcing[n] {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrCyclicDependency, s.eng.NameOf(n))
	}
	s.forcing[n] = true
	s.mu.Unlock()

	// The action calls back into the session, so no lock may be held here.
	action.EnsureExists()

	s.mu.Lock()
	delete(s.forcing, n)
	delete(s.pending, n)
	s.mu.Unlock()

	s.log.Debug().Str("name", s.eng.NameOf(n)).Msg("forced pending node")
	return nil
}

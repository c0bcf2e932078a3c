package merge

import (
	"fmt"

	"github.com/paulo-o3h/GitMerge-for-Unity/internal/scene"
)

// RegisterOurs inserts a node into the live-object table under its
// identifier. Registering a container also registers each attached
// component under its own identifier. Invalid handles are ignored; the node
// may have been destroyed by an earlier decision.
//
// Merge actions call this when they add or promote a live node; those
// identifiers then stand in for incoming nodes during resolution. Initial
// population at session start goes through Begin, which registers without
// promoting, so a pre-merge node whose identifier merely collides with an
// incoming one does not hijack cross-graph references.
func (s *Session) RegisterOurs(n scene.Node) {
	s.register(n, true)
}

func (s *Session) register(n scene.Node, promote bool) {
	if !s.valid(n) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(n, promote)
	if n.Kind() == scene.KindContainer {
		for _, c := range s.eng.ComponentsOf(n) {
			s.put(c, promote)
		}
	}
}

func (s *Session) put(n scene.Node, promote bool) {
	id := s.ids.IdentifierOf(n)
	s.ours[id] = n
	if promote {
		s.promoted[id] = true
	}
}

// UnregisterOurs removes a node from the live-object table; for a
// container, attached components are removed first, then the container
// itself. Invalid handles are ignored.
func (s *Session) UnregisterOurs(n scene.Node) {
	if n == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.Kind() == scene.KindContainer {
		for _, c := range s.eng.ComponentsOf(n) {
			s.drop(c)
		}
	}
	s.drop(n)
}

func (s *Session) drop(n scene.Node) {
	id := s.ids.IdentifierOf(n)
	delete(s.ours, id)
	delete(s.promoted, id)
}

// LookupOurs returns the live node registered under the identifier.
func (s *Session) LookupOurs(id int64) (scene.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.ours[id]
	return n, ok
}

// MarkTheirs records a container as incoming, remembering its current
// activation state, and forces it into the hidden merging state. Re-marking
// an already-marked container keeps the first recorded state but still
// forces the merging state.
func (s *Session) MarkTheirs(n scene.Node) {
	if !s.valid(n) {
		return
	}
	s.markTheirs(n, s.eng.ActiveOf(n))
}

// MarkTheirsActive is MarkTheirs with an explicit activation state to
// record, for callers marking a node whose transient state already differs
// from its intended one.
func (s *Session) MarkTheirsActive(n scene.Node, active bool) {
	if !s.valid(n) {
		return
	}
	s.markTheirs(n, active)
}

func (s *Session) markTheirs(n scene.Node, active bool) {
	// Side is tracked per container; components follow their owner.
	if n.Kind() != scene.KindContainer {
		return
	}
	s.mu.Lock()
	if _, ok := s.theirs[n]; !ok {
		s.theirs[n] = active
	}
	s.mu.Unlock()
	s.eng.SetActive(n, false)
	s.eng.SetHidden(n, true)
}

// RecordCopy pairs an incoming container with its live copy, and each of
// its components with the matching component of the copy. Returns
// ErrDuplicateCopy if the original already has a live copy and
// ErrStructuralMismatch if the component lists do not align; in both cases
// no pairings are committed.
func (s *Session) RecordCopy(their, copy scene.Node) error {
	if their == nil || copy == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.copies[their]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCopy, s.eng.NameOf(their))
	}
	pairs, err := s.pairComponents(their, copy)
	if err != nil {
		return err
	}
	s.copies[their] = copy
	for t, c := range pairs {
		s.copies[t] = c
	}
	return nil
}

// pairComponents aligns the component lists of a copy pair. By default
// components pair by type and per-type declaration order; with
// IndexPairing they pair positionally. Validation happens up front so a
// mismatch commits nothing.
func (s *Session) pairComponents(their, copy scene.Node) (map[scene.Node]scene.Node, error) {
	tc := s.eng.ComponentsOf(their)
	cc := s.eng.ComponentsOf(copy)
	if len(tc) != len(cc) {
		return nil, fmt.Errorf("%w: %d vs %d components on %q",
			ErrStructuralMismatch, len(tc), len(cc), s.eng.NameOf(their))
	}

	pairs := make(map[scene.Node]scene.Node, len(tc))
	if s.opts.IndexPairing {
		for i, t := range tc {
			pairs[t] = cc[i]
		}
		return pairs, nil
	}

	byType := make(map[string][]scene.Node)
	for _, c := range cc {
		t := s.eng.ComponentTypeOf(c)
		byType[t] = append(byType[t], c)
	}
	for _, t := range tc {
		typ := s.eng.ComponentTypeOf(t)
		queue := byType[typ]
		if len(queue) == 0 {
			return nil, fmt.Errorf("%w: no %s counterpart on %q",
				ErrStructuralMismatch, typ, s.eng.NameOf(their))
		}
		pairs[t] = queue[0]
		byType[typ] = queue[1:]
	}
	return pairs, nil
}

// RemoveCopy drops the pairing for an incoming container and all of its
// component pairings, when its copy is deleted or superseded.
func (s *Session) RemoveCopy(their scene.Node) {
	if their == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if their.Kind() == scene.KindContainer {
		for _, c := range s.eng.ComponentsOf(their) {
			delete(s.copies, c)
		}
	}
	delete(s.copies, their)
}

package merge

import (
	"github.com/paulo-o3h/GitMerge-for-Unity/internal/scene"
)

// InstantiateCopy creates a live copy of an incoming container and weaves
// it into the live hierarchy as far as current merge decisions allow. The
// caller owns recording the result via RecordCopy.
//
// The engine's deep copy duplicates the entire subtree unconditionally, but
// only children whose own merge decision already produced a counterpart may
// hang off the copy; anything else would silently duplicate subtrees whose
// decision is still open. Every duplicated child is therefore destroyed
// before resolved children of the original are moved over.
//
// If the original's parent has no counterpart yet the copy becomes a root;
// it finds its place when the parent materializes, or the caller forces
// ordering through EnsureExists first.
func (s *Session) InstantiateCopy(their scene.Node) scene.Node {
	if !s.valid(their) || their.Kind() != scene.KindContainer {
		return nil
	}

	dup := s.eng.DeepCopy(their)
	for _, child := range s.eng.ChildrenOf(dup) {
		s.eng.Destroy(child)
	}

	// The copy leaves the merging state: original name, hidden marker off,
	// and the activation flag recorded before the original was hidden
	// (falling back to the original's current flag if it was never marked).
	s.mu.RLock()
	active, recorded := s.theirs[their]
	s.mu.RUnlock()
	if !recorded {
		active = s.eng.ActiveOf(their)
	}
	s.eng.SetName(dup, s.eng.NameOf(their))
	s.eng.SetHidden(dup, false)
	s.eng.SetActive(dup, active)

	if parent := s.eng.ParentOf(their); parent != nil {
		if cp, ok := s.ResolveCounterpart(parent); ok {
			s.eng.SetParent(dup, cp, s.opts.KeepWorldTransform)
		}
	}

	s.ReattachChildren(their, dup)

	s.log.Debug().
		Str("name", s.eng.NameOf(their)).
		Int64("id", s.ids.IdentifierOf(their)).
		Msg("materialized copy")
	return dup
}

// ReattachChildren moves every child of the original that already has a
// live counterpart under the copy. Children without one stay put until
// their own materialization runs; when materialization order is adversarial
// a caller may run this again after further decisions apply.
func (s *Session) ReattachChildren(their, dup scene.Node) {
	if !s.valid(their) || !s.valid(dup) {
		return
	}
	for _, child := range s.eng.ChildrenOf(their) {
		cp, ok := s.ResolveCounterpart(child)
		if !ok {
			continue
		}
		s.eng.SetParent(cp, dup, s.opts.KeepWorldTransform)
	}
}

package merge

import (
	"github.com/paulo-o3h/GitMerge-for-Unity/internal/scene"
)

// IsTheirs reports whether a node belongs to the incoming graph. A
// component's side follows its owning container; components never key the
// incoming table themselves.
func (s *Session) IsTheirs(n scene.Node) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isTheirs(n)
}

func (s *Session) isTheirs(n scene.Node) bool {
	if n == nil {
		return false
	}
	if n.Kind() == scene.KindComponent {
		owner := n.Owner()
		if owner == nil {
			return false
		}
		_, ok := s.theirs[owner]
		return ok
	}
	_, ok := s.theirs[n]
	return ok
}

// ResolveCounterpart maps any node reference, from either graph, to the
// node that should stand for it in the live graph:
//
//  1. A node that is not incoming is already live and passes through.
//  2. An incoming node whose identifier a merge action has promoted into
//     the live-object table resolves to that promoted node.
//  3. Otherwise an existing temporary copy is returned.
//
// The second return is false when the reference has no live counterpart:
// it was deleted, or no action has created it yet.
func (s *Session) ResolveCounterpart(n scene.Node) (scene.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveCounterpart(n)
}

func (s *Session) resolveCounterpart(n scene.Node) (scene.Node, bool) {
	if n == nil {
		return nil, false
	}
	if !s.isTheirs(n) {
		return n, true
	}
	// A merge action may have promoted a node carrying this identifier
	// into the live graph; permanent promotion wins over a temporary copy.
	// Identifiers registered at initial load do not count: an incoming
	// node's identifier colliding with a pre-merge one is how promoted
	// counterparts are found, not a licence to resolve before any
	// decision has applied.
	if id := s.ids.IdentifierOf(n); s.promoted[id] {
		return s.ours[id], true
	}
	if c, ok := s.copies[n]; ok {
		return c, true
	}
	return nil, false
}

// ResolveInstance is ResolveCounterpart restricted to the temporary-copy
// shelf: promoted originals are not consulted. It distinguishes "a working
// copy exists" from "the node has been permanently adopted".
func (s *Session) ResolveInstance(n scene.Node) (scene.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n == nil {
		return nil, false
	}
	if !s.isTheirs(n) {
		return n, true
	}
	if c, ok := s.copies[n]; ok {
		return c, true
	}
	return nil, false
}

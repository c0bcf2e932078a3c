package merge

import (
	"github.com/paulo-o3h/GitMerge-for-Unity/internal/scene"
)

// Begin populates the session from both graphs: every container under
// ourRoots joins the live-object table (components included), every
// container under theirRoots is marked incoming and forced into the hidden
// merging state. Call Clear first when reusing a Session.
func (s *Session) Begin(ourRoots, theirRoots []scene.Node) {
	for _, r := range ourRoots {
		s.registerTree(r)
	}
	for _, r := range theirRoots {
		s.markTree(r)
	}
	ours, theirs, _, _ := s.Counts()
	s.log.Info().Int("ours", ours).Int("theirs", theirs).Msg("merge session started")
}

func (s *Session) registerTree(n scene.Node) {
	if !s.valid(n) {
		return
	}
	s.register(n, false)
	for _, child := range s.eng.ChildrenOf(n) {
		s.registerTree(child)
	}
}

func (s *Session) markTree(n scene.Node) {
	if !s.valid(n) {
		return
	}
	s.MarkTheirs(n)
	for _, child := range s.eng.ChildrenOf(n) {
		s.markTree(child)
	}
}

// End finishes the merge. On success the incoming originals left in the
// table are destroyed; they have been superseded by promoted copies or
// intentionally discarded. On abort each one is instead restored to its
// recorded activation state and taken out of the merging state, returning
// the graph to its pre-merge shape. Both paths clear all tables, so End is
// safe to call at any point after Begin, including mid-way through
// partially applied decisions.
func (s *Session) End(success bool) {
	s.mu.Lock()
	leftovers := s.theirs
	s.reset()
	s.mu.Unlock()

	restored := 0
	destroyed := 0
	for n, active := range leftovers {
		if !s.eng.Valid(n) {
			continue
		}
		if success {
			s.eng.Destroy(n)
			destroyed++
			continue
		}
		s.eng.SetHidden(n, false)
		s.eng.SetActive(n, active)
		restored++
	}

	s.log.Info().
		Bool("success", success).
		Int("destroyed", destroyed).
		Int("restored", restored).
		Msg("merge session ended")
}

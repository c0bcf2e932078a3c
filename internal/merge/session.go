// Package merge implements the identity-resolution and
// conditional-materialization engine behind a three-way scene merge. While
// both graphs exist in memory, a Session tracks which nodes belong to which
// side, produces live copies of incoming nodes on demand, and resolves any
// cross-graph reference to the node that will actually exist in the merged
// result, regardless of the order merge decisions are applied in.
package merge

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/paulo-o3h/GitMerge-for-Unity/internal/scene"
)

// Options tunes session behaviour. The zero value is usable; DefaultOptions
// matches the behaviour of the interactive tool.
type Options struct {
	// KeepWorldTransform preserves world transforms when reattaching
	// materialized copies and resolved children.
	KeepWorldTransform bool

	// IndexPairing pairs component lists positionally instead of by
	// component type and per-type declaration order. For host engines
	// without stable component typing.
	IndexPairing bool
}

// DefaultOptions returns the options the interactive tool runs with.
func DefaultOptions() Options {
	return Options{KeepWorldTransform: true}
}

// Session owns the four lookup tables of one merge: live objects by
// identifier, incoming originals with their pre-merge activation state,
// live copies by original, and pending nodes by owning action. All tables
// are scoped to the session and torn down together by Clear.
//
// The merge is driven synchronously, one decision at a time; the mutex is
// hygiene for the lookup tables, not a concurrency contract.
type Session struct {
	eng  scene.Engine
	ids  scene.Identifiers
	opts Options
	log  zerolog.Logger
	id   uuid.UUID

	mu       sync.RWMutex
	ours     map[int64]scene.Node      // identifier -> live node
	promoted map[int64]bool            // identifiers registered by merge actions
	theirs   map[scene.Node]bool       // incoming container -> pre-merge active flag
	copies   map[scene.Node]scene.Node // incoming node -> live copy
	pending  map[scene.Node]Action     // node -> action that will create it
	forcing  map[scene.Node]bool       // in-progress EnsureExists calls, cycle guard
}

// NewSession creates an empty session bound to a host engine and an
// identifier service. Logging is off until WithLogger is called.
func NewSession(eng scene.Engine, ids scene.Identifiers, opts Options) *Session {
	s := &Session{
		eng:  eng,
		ids:  ids,
		opts: opts,
		log:  zerolog.Nop(),
		id:   uuid.New(),
	}
	s.reset()
	return s
}

// WithLogger attaches a logger; every line carries the session id.
func (s *Session) WithLogger(log zerolog.Logger) *Session {
	s.log = log.With().Str("session", s.id.String()).Logger()
	return s
}

// ID returns the session's unique id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Clear empties all four tables. Safe to call at any time, including with
// no merge in progress; required before starting a new merge on the same
// Session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.ours = make(map[int64]scene.Node)
	s.promoted = make(map[int64]bool)
	s.theirs = make(map[scene.Node]bool)
	s.copies = make(map[scene.Node]scene.Node)
	s.pending = make(map[scene.Node]Action)
	s.forcing = make(map[scene.Node]bool)
}

// Counts reports the size of each table, for logging and assertions.
func (s *Session) Counts() (ours, theirs, copies, pending int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ours), len(s.theirs), len(s.copies), len(s.pending)
}

// valid reports whether n is a usable handle.
func (s *Session) valid(n scene.Node) bool {
	return n != nil && s.eng.Valid(n)
}

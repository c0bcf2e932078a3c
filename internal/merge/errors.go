package merge

import "errors"

// Sentinel errors surfaced to the merge-action executor. None of these
// reach the user directly; the executor translates them into merge-conflict
// messages. Duplicate registrations are surfaced rather than ignored since
// they indicate a bug in a merge action.
var (
	// ErrNotFound marks a lookup on a node nothing has registered;
	// recoverable, callers treat it as "no counterpart yet".
	ErrNotFound = errors.New("merge: node not registered")

	// ErrDuplicateCopy marks a second live copy being recorded for the
	// same incoming original.
	ErrDuplicateCopy = errors.New("merge: node already has a live copy")

	// ErrDuplicatePending marks a second action claiming ownership of a
	// node's future existence.
	ErrDuplicatePending = errors.New("merge: node already has a pending owner")

	// ErrStructuralMismatch marks component lists of a copy pair that do
	// not align; the pairing is aborted with no partial state.
	ErrStructuralMismatch = errors.New("merge: component lists do not align")

	// ErrUnknownPending marks an existence request for a node no action
	// ever declared.
	ErrUnknownPending = errors.New("merge: node has no pending owner")

	// ErrCyclicDependency marks pending actions that force each other's
	// existence in a cycle.
	ErrCyclicDependency = errors.New("merge: pending actions form a cycle")
)

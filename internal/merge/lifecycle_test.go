package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin_PopulatesBothSides(t *testing.T) {
	eng, s := newTestSession()

	level := eng.NewContainer("Level", 1)
	player := eng.NewContainer("Player", 2)
	eng.AddComponent(player, "Transform", 3)
	eng.SetParent(player, level, true)

	theirLevel := eng.NewContainer("Level", 10)
	enemy := eng.NewContainer("Enemy", 11)
	eng.SetParent(enemy, theirLevel, true)

	s.Begin(rootsOf(level), rootsOf(theirLevel))

	for _, id := range []int64{1, 2, 3} {
		_, ok := s.LookupOurs(id)
		assert.True(t, ok, "identifier %d should be registered", id)
	}

	assert.True(t, s.IsTheirs(theirLevel))
	assert.True(t, s.IsTheirs(enemy), "marking recurses into the hierarchy")
	assert.False(t, eng.ActiveOf(enemy))
	assert.True(t, eng.HiddenOf(enemy))
}

func TestEnd_Success_DestroysLeftoverOriginals(t *testing.T) {
	eng, s := newTestSession()

	theirLevel := eng.NewContainer("Level", 10)
	enemy := eng.NewContainer("Enemy", 11)
	eng.SetParent(enemy, theirLevel, true)

	s.Begin(nil, rootsOf(theirLevel))

	dup := s.InstantiateCopy(enemy)
	require.NoError(t, s.RecordCopy(enemy, dup))

	s.End(true)

	assert.False(t, eng.Valid(theirLevel), "superseded originals are destroyed")
	assert.False(t, eng.Valid(enemy))
	assert.True(t, eng.Valid(dup), "materialized copies survive")

	ours, theirs, copies, pending := s.Counts()
	assert.Zero(t, ours+theirs+copies+pending, "all tables are cleared")
}

func TestEnd_Abort_RestoresRecordedState(t *testing.T) {
	eng, s := newTestSession()

	b := eng.NewContainer("Enemy", 10)
	eng.SetActive(b, false) // transient hidden state; intended state is active
	s.MarkTheirsActive(b, true)
	require.False(t, eng.ActiveOf(b))
	require.True(t, eng.HiddenOf(b))

	s.End(false)

	assert.True(t, eng.Valid(b), "abort keeps the originals")
	assert.True(t, eng.ActiveOf(b), "recorded activation state is restored")
	assert.False(t, eng.HiddenOf(b), "the merging marker is reset")
}

func TestEnd_Abort_MidSession(t *testing.T) {
	eng, s := newTestSession()

	level := eng.NewContainer("Level", 1)
	theirLevel := eng.NewContainer("Level", 1)
	enemy := eng.NewContainer("Enemy", 10)
	eng.SetParent(enemy, theirLevel, true)

	s.Begin(rootsOf(level), rootsOf(theirLevel))

	// Partially applied decisions: a copy exists, a pending action never ran.
	dup := s.InstantiateCopy(enemy)
	require.NoError(t, s.RecordCopy(enemy, dup))
	require.NoError(t, s.AddPending(theirLevel, ActionFunc(func() {})))

	s.End(false)

	ours, theirs, copies, pending := s.Counts()
	assert.Zero(t, ours+theirs+copies+pending, "abort leaves no dangling entries")
	assert.True(t, eng.ActiveOf(enemy), "incoming nodes are re-enabled on abort")
	assert.False(t, eng.HiddenOf(theirLevel))
}

func TestEnd_SafeWithoutBegin(t *testing.T) {
	_, s := newTestSession()
	s.End(true)
	s.End(false)

	ours, theirs, copies, pending := s.Counts()
	assert.Zero(t, ours+theirs+copies+pending)
}

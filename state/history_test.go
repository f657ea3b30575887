package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWithTool(tool string) Snapshot {
	s := sampleSnapshot()
	s.Tool = tool
	return s
}

func TestHistoryUndoRedo(t *testing.T) {
	var h History
	h.Push(snapshotWithTool("a"))
	h.Push(snapshotWithTool("b"))
	h.Push(snapshotWithTool("c"))

	require.True(t, h.CanUndo())
	s, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "b", s.Tool)

	s, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, "a", s.Tool)
	assert.False(t, h.CanUndo())

	s, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "b", s.Tool)
}

func TestHistoryEmpty(t *testing.T) {
	var h History
	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
	_, ok = h.Current()
	assert.False(t, ok)
}

func TestHistoryTruncatesForward(t *testing.T) {
	var h History
	h.Push(snapshotWithTool("a"))
	h.Push(snapshotWithTool("b"))
	h.Push(snapshotWithTool("c"))

	_, _ = h.Undo()
	_, _ = h.Undo()
	h.Push(snapshotWithTool("d"))

	assert.False(t, h.CanRedo())
	assert.Equal(t, 2, h.Len())

	s, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "d", s.Tool)
}

func TestHistoryCap(t *testing.T) {
	var h History
	for i := 0; i < historyCap+10; i++ {
		h.Push(snapshotWithTool(fmt.Sprintf("t%d", i)))
	}
	assert.Equal(t, historyCap, h.Len())

	// Walking all the way back lands on the oldest surviving snapshot.
	var last Snapshot
	for {
		s, ok := h.Undo()
		if !ok {
			break
		}
		last = s
	}
	assert.Equal(t, "t10", last.Tool)
}

func TestHistorySnapshotsNotAliased(t *testing.T) {
	var h History
	s := snapshotWithTool("a")
	h.Push(s)

	s.Functions[0].Source = "tan(x)"

	got, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "sin(x)", got.Functions[0].Source)
}

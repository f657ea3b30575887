package state

// historyCap bounds the undo depth. Beyond it the oldest snapshot is
// discarded.
const historyCap = 50

// History is a bounded undo/redo buffer of immutable snapshots. The zero
// value is empty and ready to use.
type History struct {
	entries []Snapshot
	cursor  int
}

// Push records a new state. Any redo entries beyond the cursor are
// discarded, then the snapshot is deep-copied in; when the buffer is full
// the oldest entry falls off.
func (h *History) Push(s Snapshot) {
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, s.Clone())
	if len(h.entries) > historyCap {
		h.entries = h.entries[1:]
	}
	h.cursor = len(h.entries) - 1
}

// Undo steps the cursor back and returns the snapshot there. It reports
// false when there is nothing earlier.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.cursor--
	return h.entries[h.cursor].Clone(), true
}

// Redo steps the cursor forward and returns the snapshot there.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.cursor++
	return h.entries[h.cursor].Clone(), true
}

// Current returns the snapshot at the cursor.
func (h *History) Current() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	return h.entries[h.cursor].Clone(), true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return len(h.entries) > 0 && h.cursor < len(h.entries)-1 }

// Len is the number of stored snapshots.
func (h *History) Len() int { return len(h.entries) }

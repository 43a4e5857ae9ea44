package buffer

// ActionKind identifies the kind of reversible mutation recorded in history.
// Only in-place modification exists: the edit model is fixed-size, so there is
// no insert or delete kind.
type ActionKind int

const (
	// ActionModify is an in-place byte range overwrite
	ActionModify ActionKind = iota
)

// Action is a single reversible mutation. Old and New always have equal
// length and describe the byte range starting at Offset.
type Action struct {
	Kind   ActionKind // Kind of mutation (always ActionModify)
	Offset int        // Start offset of the affected range
	Old    []byte     // Bytes before the mutation
	New    []byte     // Bytes after the mutation
}

// DefaultHistoryLimit is the number of actions retained before the oldest
// entries are evicted. Keeps undo memory flat regardless of session length.
const DefaultHistoryLimit = 100

// History holds paired undo/redo stacks with a bounded undo depth.
// Pushing a new action clears the redo stack: edits after an undo discard
// the forward history (linear history model, no branching).
type History struct {
	undo  []Action
	redo  []Action
	limit int
}

// NewHistory creates a history with the given depth limit.
// A limit <= 0 falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push records a new action. The redo stack is cleared, and when the undo
// stack is full the oldest action is evicted (not merely rejected).
func (h *History) Push(a Action) {
	h.redo = h.redo[:0]
	if len(h.undo) >= h.limit {
		// Evict oldest. The shift keeps the stack a plain slice; limit is
		// small enough that the copy cost is irrelevant.
		copy(h.undo, h.undo[1:])
		h.undo = h.undo[:len(h.undo)-1]
	}
	h.undo = append(h.undo, a)
}

// Undo pops the most recent action and moves it to the redo stack.
// The caller is responsible for applying the inverse (writing a.Old).
// Returns false when there is nothing to undo.
func (h *History) Undo() (Action, bool) {
	if len(h.undo) == 0 {
		return Action{}, false
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, a)
	return a, true
}

// Redo pops the most recently undone action and moves it back to the undo
// stack. The caller reapplies it (writing a.New). Returns false when there
// is nothing to redo.
func (h *History) Redo() (Action, bool) {
	if len(h.redo) == 0 {
		return Action{}, false
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, a)
	return a, true
}

// CanUndo reports whether the undo stack is non-empty
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Depth returns the current undo stack depth
func (h *History) Depth() int {
	return len(h.undo)
}

// Clear drops both stacks. Used when a new file replaces the buffer.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

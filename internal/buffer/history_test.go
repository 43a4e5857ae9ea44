package buffer

import "testing"

func modifyAction(off int, old, new byte) Action {
	return Action{Kind: ActionModify, Offset: off, Old: []byte{old}, New: []byte{new}}
}

func TestHistoryPushUndoRedo(t *testing.T) {
	h := NewHistory(10)

	if _, ok := h.Undo(); ok {
		t.Error("Undo() on empty history returned true")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo() on empty history returned true")
	}

	h.Push(modifyAction(3, 0x00, 0x11))
	h.Push(modifyAction(7, 0x00, 0x22))

	a, ok := h.Undo()
	if !ok || a.Offset != 7 {
		t.Fatalf("Undo() = %+v, %v; want offset 7", a, ok)
	}
	if !h.CanRedo() {
		t.Error("CanRedo() = false after undo")
	}

	a, ok = h.Redo()
	if !ok || a.Offset != 7 {
		t.Fatalf("Redo() = %+v, %v; want offset 7", a, ok)
	}
	if h.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", h.Depth())
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(modifyAction(i, 0, byte(i)))
	}

	if h.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", h.Depth())
	}

	// The surviving actions are the three most recent, oldest-first.
	wantOffsets := []int{4, 3, 2}
	for _, want := range wantOffsets {
		a, ok := h.Undo()
		if !ok {
			t.Fatalf("Undo() returned false, want offset %d", want)
		}
		if a.Offset != want {
			t.Errorf("Undo() offset = %d, want %d", a.Offset, want)
		}
	}
	if _, ok := h.Undo(); ok {
		t.Error("evicted actions are still undoable")
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory(10)
	h.Push(modifyAction(0, 0, 1))
	h.Push(modifyAction(1, 0, 2))
	h.Undo()

	h.Push(modifyAction(2, 0, 3))
	if h.CanRedo() {
		t.Error("redo stack survived a push")
	}
	if h.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", h.Depth())
	}
}

func TestHistoryDefaultLimit(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < DefaultHistoryLimit+10; i++ {
		h.Push(modifyAction(i, 0, 1))
	}
	if h.Depth() != DefaultHistoryLimit {
		t.Errorf("Depth() = %d, want %d", h.Depth(), DefaultHistoryLimit)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(10)
	h.Push(modifyAction(0, 0, 1))
	h.Undo()
	h.Push(modifyAction(1, 0, 2))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear() left actions behind")
	}
}

package buffer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteByte(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		offset      int
		value       byte
		wantChanged bool
	}{
		{
			name:        "in-range change",
			size:        16,
			offset:      5,
			value:       0xAB,
			wantChanged: true,
		},
		{
			name:        "unchanged value is a no-op",
			size:        16,
			offset:      5,
			value:       0x00,
			wantChanged: false,
		},
		{
			name:        "negative offset is a no-op",
			size:        16,
			offset:      -1,
			value:       0xFF,
			wantChanged: false,
		},
		{
			name:        "offset at end is a no-op",
			size:        16,
			offset:      16,
			value:       0xFF,
			wantChanged: false,
		},
		{
			name:        "last valid offset",
			size:        16,
			offset:      15,
			value:       0x01,
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(make([]byte, tt.size), 0)
			changed := b.WriteByte(tt.offset, tt.value)
			if changed != tt.wantChanged {
				t.Errorf("WriteByte() changed = %v, want %v", changed, tt.wantChanged)
			}
			if changed != b.Dirty() {
				t.Errorf("Dirty() = %v after change = %v", b.Dirty(), changed)
			}
			if changed != b.IsModified(tt.offset) {
				t.Errorf("IsModified(%d) = %v, want %v", tt.offset, b.IsModified(tt.offset), changed)
			}
			if !changed && b.History().CanUndo() {
				t.Error("no-op write recorded a history action")
			}
		})
	}
}

func TestWriteBytes(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		offset      int
		vals        []byte
		wantChanged bool
	}{
		{
			name:        "in-range write",
			size:        16,
			offset:      4,
			vals:        []byte{1, 2, 3},
			wantChanged: true,
		},
		{
			name:        "range past end is rejected whole",
			size:        16,
			offset:      14,
			vals:        []byte{1, 2, 3},
			wantChanged: false,
		},
		{
			name:        "empty write is a no-op",
			size:        16,
			offset:      4,
			vals:        nil,
			wantChanged: false,
		},
		{
			name:        "identical bytes are a no-op",
			size:        16,
			offset:      0,
			vals:        []byte{0, 0},
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(make([]byte, tt.size), 0)
			if got := b.WriteBytes(tt.offset, tt.vals); got != tt.wantChanged {
				t.Errorf("WriteBytes() = %v, want %v", got, tt.wantChanged)
			}
			if !tt.wantChanged {
				// A rejected write must not touch any byte
				for i := 0; i < tt.size; i++ {
					if v, _ := b.Byte(i); v != 0 {
						t.Fatalf("byte %d mutated by rejected write", i)
					}
				}
			}
		})
	}
}

func TestUndoRedoRestoresState(t *testing.T) {
	b := New([]byte{0, 1, 2, 3, 4, 5, 6, 7}, 0)

	b.WriteByte(2, 0xAA)
	b.WriteBytes(4, []byte{0xBB, 0xCC})
	want := bytes.Clone(b.Bytes())

	if _, ok := b.Undo(); !ok {
		t.Fatal("first Undo() returned false")
	}
	if _, ok := b.Undo(); !ok {
		t.Fatal("second Undo() returned false")
	}
	if !bytes.Equal(b.Bytes(), []byte{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("after full undo got %v", b.Bytes())
	}
	if b.Dirty() {
		t.Error("buffer dirty after undoing every edit")
	}

	if _, ok := b.Redo(); !ok {
		t.Fatal("first Redo() returned false")
	}
	if _, ok := b.Redo(); !ok {
		t.Fatal("second Redo() returned false")
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("after redo got %v, want %v", b.Bytes(), want)
	}
}

func TestHistoryEviction(t *testing.T) {
	// With a limit of 5, six modifications leave the oldest un-undoable.
	const limit = 5
	b := New(make([]byte, 16), limit)

	for i := 0; i <= limit; i++ {
		if !b.WriteByte(i, 0xFF) {
			t.Fatalf("WriteByte(%d) did not change buffer", i)
		}
	}

	undone := 0
	for {
		if _, ok := b.Undo(); !ok {
			break
		}
		undone++
	}
	if undone != limit {
		t.Errorf("undone %d actions, want %d", undone, limit)
	}

	// Offset 0's edit was evicted, so the byte stays modified.
	if v, _ := b.Byte(0); v != 0xFF {
		t.Errorf("evicted edit was reverted: byte 0 = %02X", v)
	}
	if !b.Dirty() {
		t.Error("buffer clean although an evicted edit survives")
	}
}

func TestRedoClearedByNewMutation(t *testing.T) {
	b := New(make([]byte, 8), 0)
	b.WriteByte(0, 1)
	b.Undo()

	if !b.History().CanRedo() {
		t.Fatal("expected redo available after undo")
	}
	b.WriteByte(1, 2)
	if b.History().CanRedo() {
		t.Error("redo stack survived a new mutation")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")

	b := New([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x10}, 0)
	b.WriteByte(4, 0x99)
	if err := b.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if b.Dirty() {
		t.Error("buffer dirty after save")
	}
	if b.ModifiedCount() != 0 {
		t.Errorf("ModifiedCount() = %d after save, want 0", b.ModifiedCount())
	}

	loaded, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !bytes.Equal(loaded.Bytes(), b.Bytes()) {
		t.Errorf("round trip mismatch: got %v, want %v", loaded.Bytes(), b.Bytes())
	}
	if loaded.Path() != path {
		t.Errorf("Path() = %q, want %q", loaded.Path(), path)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.bin"), LoadOptions{})
		if err == nil {
			t.Fatal("Load() succeeded on missing file")
		}
		if !IsNotFound(err) {
			t.Errorf("IsNotFound() = false for %v", err)
		}
	})

	t.Run("oversized load declined without confirm", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.bin")
		if err := os.WriteFile(path, make([]byte, 64), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path, LoadOptions{SizeThreshold: 16})
		if !IsDeclined(err) {
			t.Errorf("expected declined error, got %v", err)
		}
	})

	t.Run("oversized load confirmed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.bin")
		if err := os.WriteFile(path, make([]byte, 64), 0o644); err != nil {
			t.Fatal(err)
		}
		var gotSize int64
		b, err := Load(path, LoadOptions{
			SizeThreshold: 16,
			Confirm: func(p string, size int64) bool {
				gotSize = size
				return true
			},
		})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if gotSize != 64 {
			t.Errorf("confirm saw size %d, want 64", gotSize)
		}
		if b.Len() != 64 {
			t.Errorf("Len() = %d, want 64", b.Len())
		}
	})
}

// TestEditScenario walks the canonical edit flow: load zeros, flip one
// byte, verify tracking, undo, verify everything is back.
func TestEditScenario(t *testing.T) {
	b := New(make([]byte, 64), 0)

	if !b.WriteByte(10, 0xFF) {
		t.Fatal("WriteByte(10, 0xFF) reported no change")
	}
	if !b.Dirty() {
		t.Error("buffer not dirty after write")
	}
	if !b.IsModified(10) {
		t.Error("offset 10 not in modified set")
	}
	if b.ModifiedCount() != 1 {
		t.Errorf("ModifiedCount() = %d, want 1", b.ModifiedCount())
	}

	a, ok := b.Undo()
	if !ok {
		t.Fatal("Undo() returned false")
	}
	if a.Offset != 10 {
		t.Errorf("undone action offset = %d, want 10", a.Offset)
	}
	if v, _ := b.Byte(10); v != 0 {
		t.Errorf("byte 10 = %02X after undo, want 00", v)
	}
	if b.IsModified(10) {
		t.Error("offset 10 still modified after undo")
	}
	if b.Dirty() {
		t.Error("buffer still dirty after undo")
	}
}

func TestLineOf(t *testing.T) {
	tests := []struct {
		off  int
		want int
	}{
		{0, 0},
		{15, 0},
		{16, 1},
		{255, 15},
		{256, 16},
	}
	for _, tt := range tests {
		if got := LineOf(tt.off); got != tt.want {
			t.Errorf("LineOf(%d) = %d, want %d", tt.off, got, tt.want)
		}
	}
}

package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenEditSaveFlow(t *testing.T) {
	log := &MemLogger{}
	s := New(Options{Logger: log})
	path := writeTemp(t, make([]byte, 64))

	if err := s.Open(path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !s.Loaded() {
		t.Fatal("Loaded() = false after Open")
	}

	if !s.WriteByte(10, 0xFF) {
		t.Fatal("WriteByte() = false")
	}
	if !s.Buffer().Dirty() {
		t.Error("buffer not dirty after edit")
	}

	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if s.Buffer().Dirty() {
		t.Error("buffer dirty after save")
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if onDisk[10] != 0xFF {
		t.Errorf("saved byte 10 = %02X, want FF", onDisk[10])
	}

	if len(log.Lines) == 0 {
		t.Error("status logger received no lines")
	}
}

func TestEvents(t *testing.T) {
	s := New(Options{})
	path := writeTemp(t, make([]byte, 64))

	var kinds []EventKind
	var lastEvent Event
	unsub := s.Subscribe(func(e Event) {
		kinds = append(kinds, e.Kind)
		lastEvent = e
	})

	if err := s.Open(path); err != nil {
		t.Fatal(err)
	}
	s.WriteByte(20, 0xAA)

	wantKinds := []EventKind{EventLoaded, EventByteChanged, EventDirtyChanged}
	if len(kinds) != len(wantKinds) {
		t.Fatalf("event kinds = %v, want %v", kinds, wantKinds)
	}
	for i := range wantKinds {
		if kinds[i] != wantKinds[i] {
			t.Errorf("event %d = %v, want %v", i, kinds[i], wantKinds[i])
		}
	}
	if !lastEvent.Dirty {
		t.Error("DirtyChanged event carries Dirty = false")
	}

	// The ByteChanged event names the display line for invalidation.
	kinds = nil
	s.WriteByte(35, 0x01)
	if len(kinds) != 1 {
		t.Fatalf("expected only ByteChanged (dirty unchanged), got %v", kinds)
	}
	if lastEvent.Line != 2 {
		t.Errorf("invalidated line = %d, want 2 for offset 35", lastEvent.Line)
	}

	unsub()
	s.WriteByte(1, 0x01)
	if len(kinds) != 1 {
		t.Error("events delivered after unsubscribe")
	}
}

func TestEventsDeliveredInRegistrationOrder(t *testing.T) {
	s := New(Options{})
	path := writeTemp(t, make([]byte, 16))
	if err := s.Open(path); err != nil {
		t.Fatal(err)
	}

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		s.Subscribe(func(Event) {
			order = append(order, name)
		})
	}

	s.SetCursor(5)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("delivery order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("delivery order = %v, want %v", order, want)
		}
	}
}

func TestDirtyEventOnUndo(t *testing.T) {
	s := New(Options{})
	if err := s.Open(writeTemp(t, make([]byte, 16))); err != nil {
		t.Fatal(err)
	}

	var dirtyStates []bool
	s.Subscribe(func(e Event) {
		if e.Kind == EventDirtyChanged {
			dirtyStates = append(dirtyStates, e.Dirty)
		}
	})

	s.WriteByte(3, 0x42)
	if !s.Undo() {
		t.Fatal("Undo() = false")
	}

	want := []bool{true, false}
	if len(dirtyStates) != 2 || dirtyStates[0] != want[0] || dirtyStates[1] != want[1] {
		t.Errorf("dirty transitions = %v, want %v", dirtyStates, want)
	}
}

func TestWriteHexString(t *testing.T) {
	s := New(Options{})
	if err := s.Open(writeTemp(t, make([]byte, 16))); err != nil {
		t.Fatal(err)
	}

	if err := s.WriteHexString(4, "DE AD BE EF"); err != nil {
		t.Fatalf("WriteHexString() error = %v", err)
	}
	got := s.Buffer().Bytes()[4:8]
	if !bytes.Equal(got, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("bytes = %v", got)
	}

	// Odd-length hex is rejected before touching the buffer.
	if err := s.WriteHexString(0, "ABC"); err == nil {
		t.Error("odd-length hex accepted")
	}
	if v, _ := s.Buffer().Byte(0); v != 0 {
		t.Error("rejected write mutated the buffer")
	}

	// Past-end writes are rejected whole.
	if err := s.WriteHexString(15, "AA BB"); err == nil {
		t.Error("past-end write accepted")
	}
	if v, _ := s.Buffer().Byte(15); v != 0 {
		t.Error("rejected past-end write mutated the buffer")
	}
}

func TestSearchAndCycle(t *testing.T) {
	data := make([]byte, 64)
	copy(data[8:], "boot")
	copy(data[40:], "boot")
	s := New(Options{})
	if err := s.Open(writeTemp(t, data)); err != nil {
		t.Fatal(err)
	}

	set := s.Search("boot")
	if set.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", set.Count())
	}

	r, ok := s.FindNext()
	if !ok || r.Offset != 8 {
		t.Errorf("FindNext() = %d, want 8", r.Offset)
	}
	if s.Cursor() != 8 {
		t.Errorf("cursor = %d, want 8", s.Cursor())
	}
	r, _ = s.FindNext()
	if r.Offset != 40 {
		t.Errorf("second FindNext() = %d, want 40", r.Offset)
	}
	r, _ = s.FindNext()
	if r.Offset != 8 {
		t.Errorf("wrapped FindNext() = %d, want 8", r.Offset)
	}
}

func TestReplaceAllThroughSession(t *testing.T) {
	data := make([]byte, 64)
	for _, off := range []int{10, 50} {
		copy(data[off:], []byte{0x11, 0x22})
	}
	s := New(Options{})
	if err := s.Open(writeTemp(t, data)); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ReplaceAll([]byte{0x33, 0x44}); err == nil {
		t.Error("ReplaceAll without a search succeeded")
	}

	s.Search("11 22")
	stats, err := s.ReplaceAll([]byte{0x33, 0x44})
	if err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	if stats.Replaced != 2 {
		t.Errorf("Replaced = %d, want 2", stats.Replaced)
	}
	if !bytes.Equal(s.Buffer().Bytes()[10:12], []byte{0x33, 0x44}) {
		t.Error("first match not replaced")
	}
}

func TestCloseDirtyPromptsSave(t *testing.T) {
	path := writeTemp(t, make([]byte, 16))

	t.Run("confirmed save", func(t *testing.T) {
		var prompt string
		s := New(Options{Confirm: ConfirmFunc(func(p string) bool {
			prompt = p
			return true
		})})
		if err := s.Open(path); err != nil {
			t.Fatal(err)
		}
		s.WriteByte(0, 0x7F)
		if err := s.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if !strings.Contains(prompt, "Save changes") {
			t.Errorf("prompt = %q", prompt)
		}
		onDisk, _ := os.ReadFile(path)
		if onDisk[0] != 0x7F {
			t.Error("confirmed close did not save")
		}
		if s.Loaded() {
			t.Error("session still loaded after Close")
		}
	})

	t.Run("declined save", func(t *testing.T) {
		s := New(Options{Confirm: ConfirmFunc(func(string) bool { return false })})
		if err := s.Open(path); err != nil {
			t.Fatal(err)
		}
		s.WriteByte(1, 0x55)
		if err := s.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		onDisk, _ := os.ReadFile(path)
		if onDisk[1] == 0x55 {
			t.Error("declined close saved anyway")
		}
	})
}

func TestOpenReplacesSessionState(t *testing.T) {
	s := New(Options{})
	if err := s.Open(writeTemp(t, make([]byte, 32))); err != nil {
		t.Fatal(err)
	}
	s.Bookmarks().Add("mark", 5, "")
	s.Search("00")
	s.SetCursor(9)

	if err := s.Open(writeTemp(t, make([]byte, 8))); err != nil {
		t.Fatal(err)
	}
	if s.Bookmarks().Len() != 0 {
		t.Error("bookmarks survived a new load")
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d after new load, want 0", s.Cursor())
	}
	if _, ok := s.FindNext(); ok {
		t.Error("stale search results survived a new load")
	}
}

func TestBookmarkNavigation(t *testing.T) {
	s := New(Options{})
	if err := s.Open(writeTemp(t, make([]byte, 128))); err != nil {
		t.Fatal(err)
	}
	s.Bookmarks().Add("a", 10, "")
	s.Bookmarks().Add("b", 90, "")

	b, ok := s.NextBookmark()
	if !ok || b.Name != "a" || s.Cursor() != 10 {
		t.Errorf("NextBookmark() = %+v, cursor %d", b, s.Cursor())
	}
	b, ok = s.NextBookmark()
	if !ok || b.Name != "b" {
		t.Errorf("second NextBookmark() = %+v", b)
	}
	if _, ok := s.NextBookmark(); ok {
		t.Error("NextBookmark() past the last bookmark = true")
	}
	b, ok = s.PrevBookmark()
	if !ok || b.Name != "a" {
		t.Errorf("PrevBookmark() = %+v, want a", b)
	}
}

func TestOpenPicked(t *testing.T) {
	path := writeTemp(t, make([]byte, 8))

	s := New(Options{Picker: StaticPicker(path)})
	opened, err := s.OpenPicked()
	if err != nil || !opened {
		t.Fatalf("OpenPicked() = %v, %v", opened, err)
	}

	cancelled := New(Options{Picker: StaticPicker("")})
	opened, err = cancelled.OpenPicked()
	if err != nil || opened {
		t.Errorf("cancelled OpenPicked() = %v, %v; want false, nil", opened, err)
	}
}

func TestInspectAtCursor(t *testing.T) {
	data := append([]byte{0x41, 0x00}, make([]byte, 14)...)
	s := New(Options{})
	if err := s.Open(writeTemp(t, data)); err != nil {
		t.Fatal(err)
	}

	fields := s.Inspect()
	if len(fields) == 0 {
		t.Fatal("Inspect() returned no fields")
	}
	for _, f := range fields {
		if f.Name == "uint8" && f.Value != "65" {
			t.Errorf("uint8 at cursor = %q, want 65", f.Value)
		}
	}
}

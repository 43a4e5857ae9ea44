package buffer

import (
	"bytes"
	"os"

	"github.com/bits-and-blooms/bitset"
)

const (
	// DefaultSizeThreshold is the load size above which the caller must
	// explicitly confirm. This is a policy threshold, not a hard cap: the
	// whole-file-in-memory model still applies to confirmed loads.
	DefaultSizeThreshold = 500 * 1024 * 1024

	// LineWidth is the display line width used for invalidation reporting
	// and hex dump layout (16 octets per line).
	LineWidth = 16
)

// ConfirmFunc is called before loading a file larger than the size
// threshold. Returning false aborts the load. A nil ConfirmFunc rejects
// all oversized loads.
type ConfirmFunc func(path string, size int64) bool

// LoadOptions control buffer creation.
type LoadOptions struct {
	// SizeThreshold overrides DefaultSizeThreshold when > 0
	SizeThreshold int64

	// Confirm gates loads larger than the threshold
	Confirm ConfirmFunc

	// HistoryLimit overrides DefaultHistoryLimit when > 0
	HistoryLimit int
}

// Buffer is the whole loaded file held in memory as a mutable byte
// sequence. It is the single owner of the edit state: every mutation goes
// through WriteByte/WriteBytes so it can be recorded in history, and the
// modified set plus dirty flag always reflect the buffer relative to its
// on-disk origin.
//
// A Buffer is single-owner per session and not safe for concurrent use.
type Buffer struct {
	data     []byte
	origin   []byte         // Byte content at load (or last save) time
	modified *bitset.BitSet // Offsets that differ from origin
	dirty    bool
	path     string
	history  *History
}

// Load reads the file at path into a new Buffer. Missing files and read
// failures surface as *FileError with the matching taxonomy type. Files
// larger than the size threshold require opts.Confirm to return true.
func Load(path string, opts LoadOptions) (*Buffer, error) {
	threshold := opts.SizeThreshold
	if threshold <= 0 {
		threshold = DefaultSizeThreshold
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, classifyFileError("load", path, err)
	}

	if info.Size() > threshold {
		if opts.Confirm == nil || !opts.Confirm(path, info.Size()) {
			return nil, &FileError{Type: ErrTypeDeclined, Op: "load", Path: path}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classifyFileError("load", path, err)
	}

	b := New(data, opts.HistoryLimit)
	b.path = path
	return b, nil
}

// New wraps raw bytes in a Buffer without any file backing. The slice is
// not copied; the Buffer takes ownership.
func New(data []byte, historyLimit int) *Buffer {
	return &Buffer{
		data:     data,
		origin:   bytes.Clone(data),
		modified: bitset.New(uint(len(data))),
		history:  NewHistory(historyLimit),
	}
}

// Save writes the full buffer to path (always a whole-file write, never
// incremental) and rebases the modified tracking: after a successful save
// the buffer is clean relative to the file just written.
func (b *Buffer) Save(path string) error {
	if err := os.WriteFile(path, b.data, 0o644); err != nil {
		return classifyFileError("save", path, err)
	}

	b.path = path
	b.origin = bytes.Clone(b.data)
	b.modified.ClearAll()
	b.dirty = false
	return nil
}

// Len returns the buffer length in bytes
func (b *Buffer) Len() int {
	return len(b.data)
}

// Path returns the file path the buffer was loaded from or last saved to.
// Empty for buffers created with New that were never saved.
func (b *Buffer) Path() string {
	return b.path
}

// Dirty reports whether the buffer has unsaved mutations
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Byte returns the byte at off, or false when off is out of range
func (b *Buffer) Byte(off int) (byte, bool) {
	if off < 0 || off >= len(b.data) {
		return 0, false
	}
	return b.data[off], true
}

// Bytes returns the underlying byte sequence. Callers must treat it as
// read-only; all mutation goes through WriteByte/WriteBytes.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// IsModified reports whether the byte at off differs from its loaded value
func (b *Buffer) IsModified(off int) bool {
	if off < 0 || off >= len(b.data) {
		return false
	}
	return b.modified.Test(uint(off))
}

// ModifiedCount returns how many offsets differ from their loaded values
func (b *Buffer) ModifiedCount() int {
	return int(b.modified.Count())
}

// History exposes the undo/redo engine for depth queries
func (b *Buffer) History() *History {
	return b.history
}

// LineOf returns the display line index containing off
func LineOf(off int) int {
	return off / LineWidth
}

// WriteByte sets the byte at off. Out-of-range offsets and unchanged
// values are no-ops (transient UI state, not errors). A real change
// records an undoable action, updates the modified set, and marks the
// buffer dirty. Returns true when the buffer changed.
func (b *Buffer) WriteByte(off int, val byte) bool {
	if off < 0 || off >= len(b.data) {
		return false
	}
	old := b.data[off]
	if old == val {
		return false
	}

	b.history.Push(Action{
		Kind:   ActionModify,
		Offset: off,
		Old:    []byte{old},
		New:    []byte{val},
	})
	b.data[off] = val
	b.refreshRange(off, 1)
	return true
}

// WriteBytes overwrites len(vals) bytes starting at off as a single
// undoable action. The write is validated before any byte is touched: a
// range extending past the buffer end is rejected outright rather than
// partially applied. Returns true when the buffer changed.
func (b *Buffer) WriteBytes(off int, vals []byte) bool {
	if len(vals) == 0 || off < 0 || off+len(vals) > len(b.data) {
		return false
	}
	if bytes.Equal(b.data[off:off+len(vals)], vals) {
		return false
	}

	b.history.Push(Action{
		Kind:   ActionModify,
		Offset: off,
		Old:    bytes.Clone(b.data[off : off+len(vals)]),
		New:    bytes.Clone(vals),
	})
	copy(b.data[off:], vals)
	b.refreshRange(off, len(vals))
	return true
}

// Undo reverts the most recent mutation. Returns the reverted action and
// true, or false when the history is empty.
func (b *Buffer) Undo() (Action, bool) {
	a, ok := b.history.Undo()
	if !ok {
		return Action{}, false
	}
	copy(b.data[a.Offset:], a.Old)
	b.refreshRange(a.Offset, len(a.Old))
	return a, true
}

// Redo reapplies the most recently undone mutation. Returns the reapplied
// action and true, or false when there is nothing to redo.
func (b *Buffer) Redo() (Action, bool) {
	a, ok := b.history.Redo()
	if !ok {
		return Action{}, false
	}
	copy(b.data[a.Offset:], a.New)
	b.refreshRange(a.Offset, len(a.New))
	return a, true
}

// refreshRange recomputes modified bits for [off, off+n) against the
// origin snapshot and updates the dirty flag. Comparing against origin
// (rather than toggling bits) keeps the modified set correct when an undo
// returns a byte to its loaded value.
func (b *Buffer) refreshRange(off, n int) {
	for i := off; i < off+n; i++ {
		if b.data[i] != b.origin[i] {
			b.modified.Set(uint(i))
		} else {
			b.modified.Clear(uint(i))
		}
	}
	b.dirty = b.modified.Any()
}

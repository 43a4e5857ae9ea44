package session

import (
	"fmt"

	"github.com/draal/hexforge/internal/bookmark"
	"github.com/draal/hexforge/internal/buffer"
	"github.com/draal/hexforge/internal/config"
	"github.com/draal/hexforge/internal/inspect"
	"github.com/draal/hexforge/internal/search"
)

// Options configure a session at construction. Logger, Picker and
// Confirmer are the collaborator interfaces the embedding application
// supplies; all are optional, with nil meaning "no prompt, no status
// output, oversized loads rejected".
type Options struct {
	Logger  Logger
	Picker  Picker
	Confirm Confirmer

	// Prefs supplies tuning knobs (history depth, load threshold,
	// inspector byte order). Nil falls back to built-in defaults.
	Prefs *config.Preferences

	// TrackRecent controls whether successful opens and saves update
	// the persisted recent-files list. Off by default so library users
	// and tests do not touch the config directory.
	TrackRecent bool
}

// Session is the single owner of one editing buffer and everything
// hanging off it: undo history, bookmarks, the last search result set
// and the cursor. All methods are for use from one goroutine.
type Session struct {
	opts Options

	buf    *buffer.Buffer
	cursor int
	marks  *bookmark.Manager

	lastSearch *search.ResultSet
	lastDirty  bool

	observers    map[int]Observer
	nextObserver int
}

// New creates an empty session with no buffer loaded
func New(opts Options) *Session {
	return &Session{
		opts:      opts,
		marks:     bookmark.NewManager(),
		observers: make(map[int]Observer),
	}
}

// Buffer returns the live buffer, or nil when nothing is loaded
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Loaded reports whether a buffer is open
func (s *Session) Loaded() bool {
	return s.buf != nil
}

// Open loads the file at path, replacing any current buffer. A dirty
// buffer triggers the save prompt first, exactly as Close does. Session
// state tied to the old buffer (bookmarks, search results, cursor,
// history) is destroyed with it.
func (s *Session) Open(path string) error {
	if s.buf != nil {
		if err := s.Close(); err != nil {
			return err
		}
	}

	opts := buffer.LoadOptions{}
	if s.opts.Prefs != nil {
		opts.SizeThreshold = s.opts.Prefs.LargeLoadThresholdBytes()
		opts.HistoryLimit = s.opts.Prefs.HistoryDepth
	}
	if s.opts.Confirm != nil {
		opts.Confirm = func(p string, size int64) bool {
			return s.opts.Confirm.Confirm(fmt.Sprintf(
				"%s is %d bytes and will be loaded into memory in full. Continue?", p, size))
		}
	}

	buf, err := buffer.Load(path, opts)
	if err != nil {
		logf(s.opts.Logger, "load failed: %v", err)
		return err
	}

	s.buf = buf
	s.cursor = 0
	s.lastDirty = false
	s.lastSearch = nil
	s.marks.Clear()

	if s.opts.TrackRecent {
		if err := config.AddRecent(path); err != nil {
			logf(s.opts.Logger, "recent list not updated: %v", err)
		}
	}

	logf(s.opts.Logger, "loaded %s (%d bytes)", path, buf.Len())
	s.emit(Event{Kind: EventLoaded, Path: path})
	return nil
}

// OpenPicked asks the Picker for a path and opens it. Returns false
// without error when the user cancelled.
func (s *Session) OpenPicked() (bool, error) {
	if s.opts.Picker == nil {
		return false, nil
	}
	path, ok := s.opts.Picker.Pick()
	if !ok {
		logf(s.opts.Logger, "open cancelled")
		return false, nil
	}
	return true, s.Open(path)
}

// Save writes the buffer back to the path it was loaded from
func (s *Session) Save() error {
	if s.buf == nil {
		return fmt.Errorf("no buffer loaded")
	}
	return s.SaveAs(s.buf.Path())
}

// SaveAs writes the full buffer to path and rebases dirty tracking
func (s *Session) SaveAs(path string) error {
	if s.buf == nil {
		return fmt.Errorf("no buffer loaded")
	}
	if path == "" {
		return fmt.Errorf("no file path set; use SaveAs")
	}
	if err := s.buf.Save(path); err != nil {
		logf(s.opts.Logger, "save failed: %v", err)
		return err
	}

	if s.opts.TrackRecent {
		if err := config.AddRecent(path); err != nil {
			logf(s.opts.Logger, "recent list not updated: %v", err)
		}
	}

	logf(s.opts.Logger, "saved %s (%d bytes)", path, s.buf.Len())
	s.emit(Event{Kind: EventSaved, Path: path})
	s.emitDirty()
	return nil
}

// Close destroys the buffer. A dirty buffer first asks the Confirmer
// whether to save; a yes answer saves to the buffer's own path and a
// save failure aborts the close so no edits are lost silently.
func (s *Session) Close() error {
	if s.buf == nil {
		return nil
	}
	if s.buf.Dirty() && s.opts.Confirm != nil {
		prompt := fmt.Sprintf("Save changes to %s before closing?", s.buf.Path())
		if s.opts.Confirm.Confirm(prompt) {
			if err := s.Save(); err != nil {
				return err
			}
		}
	}

	path := s.buf.Path()
	s.buf = nil
	s.cursor = 0
	s.lastSearch = nil
	s.lastDirty = false
	s.marks.Clear()

	logf(s.opts.Logger, "closed %s", path)
	s.emit(Event{Kind: EventClosed, Path: path})
	return nil
}

// Cursor returns the current cursor offset
func (s *Session) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor, clamping into the buffer instead of
// erroring: an out-of-range target is transient UI state.
func (s *Session) SetCursor(off int) {
	if s.buf == nil {
		return
	}
	if off < 0 {
		off = 0
	}
	if max := s.buf.Len() - 1; off > max {
		off = max
	}
	if off == s.cursor {
		return
	}
	s.cursor = off
	s.emit(Event{Kind: EventCursorMoved, Offset: off})
}

// WriteByte applies a single-byte edit at off. No-ops (out of range,
// unchanged value) emit nothing.
func (s *Session) WriteByte(off int, val byte) bool {
	if s.buf == nil {
		return false
	}
	if !s.buf.WriteByte(off, val) {
		return false
	}
	s.emit(Event{Kind: EventByteChanged, Offset: off, Line: buffer.LineOf(off)})
	s.emitDirty()
	return true
}

// WriteHexString applies a multi-byte edit parsed from strict hex at
// off. Malformed input (odd digit count, non-hex characters) and ranges
// past the buffer end are rejected before any byte is touched.
func (s *Session) WriteHexString(off int, hexPattern string) error {
	if s.buf == nil {
		return fmt.Errorf("no buffer loaded")
	}
	vals, err := search.ParseHex(hexPattern)
	if err != nil {
		logf(s.opts.Logger, "edit rejected: %v", err)
		return err
	}
	if off < 0 || off+len(vals) > s.buf.Len() {
		return fmt.Errorf("write of %d bytes at offset %d exceeds buffer size %d",
			len(vals), off, s.buf.Len())
	}
	if s.buf.WriteBytes(off, vals) {
		s.emit(Event{Kind: EventByteChanged, Offset: off, Line: buffer.LineOf(off)})
		s.emitDirty()
	}
	return nil
}

// Undo reverts the most recent edit. Returns false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	if s.buf == nil {
		return false
	}
	a, ok := s.buf.Undo()
	if !ok {
		logf(s.opts.Logger, "nothing to undo")
		return false
	}
	logf(s.opts.Logger, "undo at 0x%X", a.Offset)
	s.emit(Event{Kind: EventByteChanged, Offset: a.Offset, Line: buffer.LineOf(a.Offset)})
	s.emitDirty()
	return true
}

// Redo reapplies the most recently undone edit. Returns false when
// there is nothing to redo.
func (s *Session) Redo() bool {
	if s.buf == nil {
		return false
	}
	a, ok := s.buf.Redo()
	if !ok {
		logf(s.opts.Logger, "nothing to redo")
		return false
	}
	logf(s.opts.Logger, "redo at 0x%X", a.Offset)
	s.emit(Event{Kind: EventByteChanged, Offset: a.Offset, Line: buffer.LineOf(a.Offset)})
	s.emitDirty()
	return true
}

// Search runs a pattern search over the whole buffer and remembers the
// result set for FindNext/FindPrev and ReplaceAll.
func (s *Session) Search(query string) *search.ResultSet {
	if s.buf == nil {
		return nil
	}
	set := search.Find(s.buf.Bytes(), search.ParseQuery(query))
	s.lastSearch = set

	if set.Truncated {
		logf(s.opts.Logger, "search %q: %d+ matches (truncated)", query, set.Count())
	} else {
		logf(s.opts.Logger, "search %q: %d matches", query, set.Count())
	}
	s.emit(Event{Kind: EventSearchDone, Count: set.Count()})
	return set
}

// FindNext moves the cursor to the next match of the last search,
// wrapping at the end. Returns false when there is no result set or it
// is empty.
func (s *Session) FindNext() (search.Result, bool) {
	if s.lastSearch == nil {
		return search.Result{}, false
	}
	r, ok := s.lastSearch.Next()
	if ok {
		s.SetCursor(r.Offset)
	}
	return r, ok
}

// FindPrev moves the cursor to the previous match of the last search,
// wrapping at the beginning.
func (s *Session) FindPrev() (search.Result, bool) {
	if s.lastSearch == nil {
		return search.Result{}, false
	}
	r, ok := s.lastSearch.Prev()
	if ok {
		s.SetCursor(r.Offset)
	}
	return r, ok
}

// ReplaceAll overwrites every equal-length match of the last search
// with repl. Each replacement is individually undoable.
func (s *Session) ReplaceAll(repl []byte) (search.ReplaceStats, error) {
	if s.buf == nil {
		return search.ReplaceStats{}, fmt.Errorf("no buffer loaded")
	}
	if s.lastSearch == nil {
		return search.ReplaceStats{}, fmt.Errorf("no search to replace; run Search first")
	}

	stats := search.ReplaceAll(s.buf, s.lastSearch, repl)
	logf(s.opts.Logger, "replaced %d match(es), skipped %d", stats.Replaced, stats.Skipped)
	if stats.Replaced > 0 {
		s.emit(Event{Kind: EventByteChanged, Offset: s.lastSearch.Results[0].Offset,
			Line: buffer.LineOf(s.lastSearch.Results[0].Offset)})
		s.emitDirty()
	}
	return stats, nil
}

// Bookmarks exposes the session's bookmark manager
func (s *Session) Bookmarks() *bookmark.Manager {
	return s.marks
}

// NextBookmark jumps the cursor to the nearest bookmark after it
func (s *Session) NextBookmark() (bookmark.Bookmark, bool) {
	b, ok := s.marks.Next(s.cursor)
	if ok {
		s.SetCursor(b.Offset)
	}
	return b, ok
}

// PrevBookmark jumps the cursor to the nearest bookmark before it
func (s *Session) PrevBookmark() (bookmark.Bookmark, bool) {
	b, ok := s.marks.Prev(s.cursor)
	if ok {
		s.SetCursor(b.Offset)
	}
	return b, ok
}

// Inspect decodes the inspector panel at the cursor using the
// configured byte order.
func (s *Session) Inspect() []inspect.Field {
	if s.buf == nil {
		return nil
	}
	endian := inspect.Little
	if s.opts.Prefs != nil && s.opts.Prefs.BigEndian {
		endian = inspect.Big
	}
	return inspect.Fields(s.buf.Bytes(), s.cursor, endian)
}

package session

import (
	"fmt"
	"sort"
)

// EventKind says what changed in the session
type EventKind int

const (
	// EventLoaded fires after a file replaces the buffer
	EventLoaded EventKind = iota
	// EventSaved fires after a successful save
	EventSaved
	// EventClosed fires when the buffer is destroyed
	EventClosed
	// EventByteChanged fires for every applied mutation, undo and redo
	EventByteChanged
	// EventDirtyChanged fires when the dirty flag flips
	EventDirtyChanged
	// EventSearchDone fires when a search pass completes
	EventSearchDone
	// EventCursorMoved fires when the cursor changes
	EventCursorMoved
)

// String returns a human-readable name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventSaved:
		return "saved"
	case EventClosed:
		return "closed"
	case EventByteChanged:
		return "byte-changed"
	case EventDirtyChanged:
		return "dirty-changed"
	case EventSearchDone:
		return "search-done"
	case EventCursorMoved:
		return "cursor-moved"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is the explicit state notification handed to subscribers. The
// presentation layer redraws from these; the engine never reaches into
// UI code.
type Event struct {
	Kind   EventKind
	Path   string // File path for Loaded/Saved/Closed
	Offset int    // Affected offset for ByteChanged/CursorMoved
	Line   int    // Display line to invalidate for ByteChanged
	Dirty  bool   // Current dirty flag for DirtyChanged
	Count  int    // Result count for SearchDone
}

// Observer receives session events. Delivery is synchronous on the
// session's own goroutine, matching the single-owner model.
type Observer func(Event)

// Subscribe registers an observer and returns its unsubscribe function.
// Unsubscribing during dispatch is safe; the observer just stops
// receiving events after the current one.
func (s *Session) Subscribe(obs Observer) func() {
	s.nextObserver++
	id := s.nextObserver
	s.observers[id] = obs
	return func() {
		delete(s.observers, id)
	}
}

// emit delivers an event to every subscriber in registration order.
// Observer ids are handed out by Subscribe in increasing order, so
// dispatching by ascending id preserves it.
func (s *Session) emit(e Event) {
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if obs, ok := s.observers[id]; ok {
			obs(e)
		}
	}
}

// emitDirty fires DirtyChanged when the flag flipped since last check
func (s *Session) emitDirty() {
	dirty := s.buf != nil && s.buf.Dirty()
	if dirty != s.lastDirty {
		s.lastDirty = dirty
		s.emit(Event{Kind: EventDirtyChanged, Dirty: dirty})
	}
}

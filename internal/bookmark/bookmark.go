// Package bookmark implements named-offset navigation for the HexForge
// engine. Bookmarks are plain markers: a name, an offset and an optional
// description. Several bookmarks may share one offset; callers decide
// whether that is meaningful, the manager does not deduplicate.
package bookmark

import (
	"sort"
	"time"
)

// Bookmark is a named offset in the buffer
type Bookmark struct {
	Name        string    // User-chosen label
	Offset      int       // Buffer offset the bookmark points at
	Description string    // Optional free-text note
	CreatedAt   time.Time // When the bookmark was added
}

// Manager holds the bookmark collection for one session
type Manager struct {
	bookmarks []Bookmark
}

// NewManager creates an empty bookmark manager
func NewManager() *Manager {
	return &Manager{}
}

// Add records a bookmark. Duplicates at the same offset are allowed.
func (m *Manager) Add(name string, offset int, description string) Bookmark {
	b := Bookmark{
		Name:        name,
		Offset:      offset,
		Description: description,
		CreatedAt:   time.Now(),
	}
	m.bookmarks = append(m.bookmarks, b)
	return b
}

// Remove deletes the first bookmark with the given name. Returns false
// when no bookmark matches.
func (m *Manager) Remove(name string) bool {
	for i, b := range m.bookmarks {
		if b.Name == name {
			m.bookmarks = append(m.bookmarks[:i], m.bookmarks[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first bookmark with the given name
func (m *Manager) Find(name string) (Bookmark, bool) {
	for _, b := range m.bookmarks {
		if b.Name == name {
			return b, true
		}
	}
	return Bookmark{}, false
}

// List returns all bookmarks sorted by offset, then by creation order
// for bookmarks sharing an offset.
func (m *Manager) List() []Bookmark {
	out := make([]Bookmark, len(m.bookmarks))
	copy(out, m.bookmarks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}

// Len returns the number of bookmarks
func (m *Manager) Len() int {
	return len(m.bookmarks)
}

// Clear removes every bookmark. Used when the session loads a new file.
func (m *Manager) Clear() {
	m.bookmarks = m.bookmarks[:0]
}

// Next returns the bookmark with the smallest offset strictly greater
// than cursor. Returns false at the upper boundary.
func (m *Manager) Next(cursor int) (Bookmark, bool) {
	var best Bookmark
	found := false
	for _, b := range m.bookmarks {
		if b.Offset <= cursor {
			continue
		}
		if !found || b.Offset < best.Offset {
			best = b
			found = true
		}
	}
	return best, found
}

// Prev returns the bookmark with the largest offset strictly less than
// cursor. Returns false at the lower boundary.
func (m *Manager) Prev(cursor int) (Bookmark, bool) {
	var best Bookmark
	found := false
	for _, b := range m.bookmarks {
		if b.Offset >= cursor {
			continue
		}
		if !found || b.Offset > best.Offset {
			best = b
			found = true
		}
	}
	return best, found
}

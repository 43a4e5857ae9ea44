// Package session ties the HexForge engine together: one Session owns
// one buffer plus the state that only makes sense alongside it (cursor,
// bookmarks, last search result set) and mediates every operation the
// embedding application performs.
//
// # Collaborators
//
// The session never talks to a UI directly. Three narrow interfaces are
// injected at construction:
//
//   - Logger: a free-text status sink for human-readable progress lines
//   - Picker: file selection, returning a path or cancellation
//   - Confirmer: yes/no prompts (oversized loads, dirty-close save)
//
// All are optional. A nil Confirmer rejects oversized loads and closes
// dirty buffers without saving; a nil Logger is silent.
//
// # Change Notification
//
// State changes fan out through Subscribe as explicit Event values
// (loaded, saved, byte changed with its display line, dirty flipped,
// search done, cursor moved). Delivery is synchronous: the session is
// single-owner, so there is no cross-goroutine fan-out to coordinate.
//
// # Lifecycle
//
// Open replaces the buffer, first running the dirty-close flow for any
// buffer already loaded; Close destroys it. Everything derived from the
// old buffer dies with it: bookmarks and search results never outlive
// the bytes they point into.
package session

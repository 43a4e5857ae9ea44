// Package buffer implements the byte buffer store at the root of the
// HexForge editing engine, together with its bounded undo/redo history.
//
// A Buffer holds an entire file in memory as a fixed-length mutable byte
// sequence. The edit model is strictly in-place: bytes can be overwritten
// but never inserted or removed, so every offset stays stable for the life
// of a session. All mutation flows through WriteByte and WriteBytes, which
// record reversible actions on the history, maintain the set of offsets
// that differ from the loaded file, and keep the dirty flag accurate.
//
// # Modified Tracking
//
// The buffer keeps a snapshot of its content as loaded (rebased on save)
// and a bitset of offsets that currently differ from it. This makes
// modified state exact under undo: reverting an edit that returned a byte
// to its original value clears the offset's modified bit instead of
// leaving it stuck.
//
// # History Model
//
// History is linear and bounded. New mutations clear the redo stack, and
// once the undo stack reaches its limit (100 by default) the oldest action
// is evicted, keeping memory flat no matter how long a session runs. An
// evicted action simply becomes un-undoable.
//
// # Large Loads
//
// Loads above a policy threshold (500 MB by default) require an explicit
// caller-supplied confirmation via LoadOptions.Confirm. This is a prompt
// gate, not a size cap: a confirmed load still reads the whole file into
// memory.
//
// # Error Handling
//
// File-level failures are reported as *FileError carrying a typed
// category (not found, permission, I/O, declined). In-memory logic errors
// such as out-of-range offsets never surface as errors; they are no-ops
// because they reflect transient UI state rather than programming bugs.
//
// # Thread Safety
//
// A Buffer is single-owner and not safe for concurrent use. Sessions own
// exactly one live buffer at a time.
package buffer

package search

import (
	"bytes"

	"github.com/draal/hexforge/internal/buffer"
)

const (
	// MaxResults caps a single search pass. Past the cap the scan stops
	// and the result set is flagged truncated.
	MaxResults = 1000

	// PreviewLen caps the preview text attached to each result
	PreviewLen = 50
)

// Result is a single match in the buffer
type Result struct {
	Offset  int    // Start offset of the match
	Length  int    // Match length in bytes
	Preview string // Printable rendering of the matched bytes
}

// ResultSet holds the ordered matches of one search pass plus the cursor
// used by Next/Prev cycling.
type ResultSet struct {
	Query     Query    // The query that produced this set
	Results   []Result // Matches in ascending offset order
	Truncated bool     // True when the scan stopped at MaxResults
	pos       int      // Cycling cursor, index of the last returned result
}

// Find scans data for q with a linear sliding-window pass. Matches do not
// overlap: the window advances past each hit. Search is an interactive
// operation over a size-gated buffer, so the O(n*m) scan is fine and a
// fancier algorithm would buy nothing.
func Find(data []byte, q Query) *ResultSet {
	set := &ResultSet{Query: q, pos: -1}
	if len(q.Bytes) == 0 || len(data) < len(q.Bytes) {
		return set
	}

	from := 0
	for {
		i := bytes.Index(data[from:], q.Bytes)
		if i < 0 {
			break
		}
		off := from + i
		set.Results = append(set.Results, Result{
			Offset:  off,
			Length:  len(q.Bytes),
			Preview: preview(data[off : off+len(q.Bytes)]),
		})
		if len(set.Results) >= MaxResults {
			// Anything past the cap may exist; tell the caller instead of
			// silently pretending the scan was complete.
			set.Truncated = bytes.Contains(data[off+len(q.Bytes):], q.Bytes)
			break
		}
		from = off + len(q.Bytes)
	}

	return set
}

// Count returns the number of matches in the set
func (s *ResultSet) Count() int {
	return len(s.Results)
}

// Next returns the match after the previously returned one, wrapping to
// the first match past the end. Returns false on an empty set.
func (s *ResultSet) Next() (Result, bool) {
	if len(s.Results) == 0 {
		return Result{}, false
	}
	s.pos = (s.pos + 1) % len(s.Results)
	return s.Results[s.pos], true
}

// Prev returns the match before the previously returned one, wrapping to
// the last match before the beginning. Returns false on an empty set.
func (s *ResultSet) Prev() (Result, bool) {
	if len(s.Results) == 0 {
		return Result{}, false
	}
	if s.pos < 0 {
		s.pos = 0
	}
	s.pos = (s.pos - 1 + len(s.Results)) % len(s.Results)
	return s.Results[s.pos], true
}

// ReplaceStats summarizes a ReplaceAll pass
type ReplaceStats struct {
	Replaced int // Matches overwritten
	Skipped  int // Matches left alone (length mismatch)
}

// ReplaceAll overwrites every match in set whose length equals len(repl).
// Replacements run in descending offset order so writing a later match
// never perturbs the recorded offset of an earlier one within the same
// pass. Each replacement is one undoable action on the buffer.
func ReplaceAll(b *buffer.Buffer, set *ResultSet, repl []byte) ReplaceStats {
	var stats ReplaceStats
	for i := len(set.Results) - 1; i >= 0; i-- {
		r := set.Results[i]
		if r.Length != len(repl) {
			stats.Skipped++
			continue
		}
		if b.WriteBytes(r.Offset, repl) {
			stats.Replaced++
		}
	}
	return stats
}

// preview renders matched bytes as printable ASCII, dots elsewhere
func preview(data []byte) string {
	n := len(data)
	if n > PreviewLen {
		n = PreviewLen
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		if data[i] >= 0x20 && data[i] <= 0x7E {
			out[i] = data[i]
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

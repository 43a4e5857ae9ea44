package sigscan

const (
	// DefaultMinStringLength is the shortest printable run reported
	DefaultMinStringLength = 4

	// MaxStringMatches caps one extraction pass
	MaxStringMatches = 1000

	// stringPreviewLen caps the text attached to each match
	stringPreviewLen = 50
)

// StringMatch is one printable-ASCII run found in the buffer
type StringMatch struct {
	Offset int    // Start offset of the run
	Length int    // Full run length in bytes
	Text   string // Run text, truncated to 50 characters
}

// ExtractStrings scans the buffer for runs of printable ASCII
// (0x20-0x7E) of at least minLen bytes. A run is emitted when it ends,
// so its Length is always the full run even though Text is truncated.
// Returns the matches in offset order plus a flag saying whether the
// scan stopped at the match cap.
func ExtractStrings(data []byte, minLen int) ([]StringMatch, bool) {
	if minLen <= 0 {
		minLen = DefaultMinStringLength
	}

	var matches []StringMatch
	runStart := -1

	emit := func(end int) bool {
		if runStart < 0 || end-runStart < minLen {
			runStart = -1
			return true
		}
		text := data[runStart:end]
		if len(text) > stringPreviewLen {
			text = text[:stringPreviewLen]
		}
		matches = append(matches, StringMatch{
			Offset: runStart,
			Length: end - runStart,
			Text:   string(text),
		})
		runStart = -1
		return len(matches) < MaxStringMatches
	}

	for i, c := range data {
		if c >= 0x20 && c <= 0x7E {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if !emit(i) {
			// Cap reached mid-scan. Only claim truncation when the
			// unscanned tail actually holds another qualifying run.
			return matches, hasQualifyingRun(data[i+1:], minLen)
		}
	}
	if !emit(len(data)) {
		// Cap reached on the final run; nothing after it was cut off.
		return matches, false
	}
	return matches, false
}

// hasQualifyingRun reports whether data contains a printable-ASCII run
// of at least minLen bytes.
func hasQualifyingRun(data []byte, minLen int) bool {
	run := 0
	for _, c := range data {
		if c >= 0x20 && c <= 0x7E {
			run++
			if run >= minLen {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}

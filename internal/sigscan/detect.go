package sigscan

// Type labels for buffers that match no signature
const (
	// LabelText is plain text (no disallowed control characters sampled)
	LabelText = "text"
	// LabelBinary is generic binary data
	LabelBinary = "binary"
	// LabelEmpty is a zero-length buffer
	LabelEmpty = "empty"
)

// heuristicSampleSize is how many leading bytes the text/binary
// heuristic inspects
const heuristicSampleSize = 1000

// DetectType classifies a buffer. Signatures are tried in database
// order, each at its own detection offset; the first match wins. A
// buffer matching no signature is classified text when a sample of its
// first 1000 bytes contains no disallowed control characters, otherwise
// generic binary.
func DetectType(data []byte) string {
	if len(data) == 0 {
		return LabelEmpty
	}

	for _, sig := range mustSignatures() {
		if sig.matchesAt(data, sig.Offset) {
			return sig.Label
		}
	}

	if looksLikeText(data) {
		return LabelText
	}
	return LabelBinary
}

// DetectTypeName is DetectType but returns the human-readable format
// name for signature matches (e.g., "ZIP Archive" instead of "zip").
func DetectTypeName(data []byte) string {
	if len(data) == 0 {
		return LabelEmpty
	}
	for _, sig := range mustSignatures() {
		if sig.matchesAt(data, sig.Offset) {
			return sig.Name
		}
	}
	if looksLikeText(data) {
		return LabelText
	}
	return LabelBinary
}

// looksLikeText samples the first heuristicSampleSize bytes for control
// characters outside the usual whitespace set. One hit means binary.
func looksLikeText(data []byte) bool {
	n := len(data)
	if n > heuristicSampleSize {
		n = heuristicSampleSize
	}
	for i := 0; i < n; i++ {
		c := data[i]
		if c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if c < 0x20 || c == 0x7F {
			return false
		}
	}
	return true
}

package search

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// QueryKind says how the query string was interpreted
type QueryKind int

const (
	// KindHex means the query parsed as hex byte tokens
	KindHex QueryKind = iota
	// KindText means the query was taken as literal text
	KindText
)

// String returns a human-readable name for the query kind
func (k QueryKind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("QueryKind(%d)", k)
	}
}

// PatternError reports a malformed hex pattern. It is advisory for search
// (the query falls back to text) but fatal for replacements, where a
// half-parsed pattern must never reach the buffer.
type PatternError struct {
	Pattern string // The offending input
	Reason  string // What was wrong with it
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}

// Query is a parsed search pattern: the exact bytes to look for plus how
// the input string was interpreted.
type Query struct {
	Raw   string    // Original input
	Bytes []byte    // Exact bytes to match
	Kind  QueryKind // How Raw was interpreted
}

// ParseHex parses a strict hex pattern: two-digit tokens separated by
// spaces ("FF 00 AB") or one contiguous even-length run ("FF00AB").
// Odd-length input and non-hex characters are rejected with a
// *PatternError before anything touches a buffer.
func ParseHex(s string) ([]byte, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if cleaned == "" {
		return nil, &PatternError{Pattern: s, Reason: "empty pattern"}
	}
	if len(cleaned)%2 != 0 {
		return nil, &PatternError{Pattern: s, Reason: "odd number of hex digits"}
	}
	out, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, &PatternError{Pattern: s, Reason: "not a hex string"}
	}
	return out, nil
}

// ParseQuery interprets a search input. Inputs that look like hex byte
// tokens are parsed as exact bytes; anything else (including malformed
// hex, which is never a hard failure for search) falls back to a literal
// text query. Text is matched as UTF-8; strings that are not valid UTF-8
// are re-encoded through Latin-1 so every rune still maps to one byte.
func ParseQuery(s string) Query {
	if b, err := ParseHex(s); err == nil {
		return Query{Raw: s, Bytes: b, Kind: KindHex}
	}
	return Query{Raw: s, Bytes: encodeText(s), Kind: KindText}
}

// ParseTextQuery forces literal-text interpretation, for callers that
// know the input is not hex (e.g. an ASCII search field).
func ParseTextQuery(s string) Query {
	return Query{Raw: s, Bytes: encodeText(s), Kind: KindText}
}

// encodeText converts a query string to the byte sequence to scan for
func encodeText(s string) []byte {
	if utf8.ValidString(s) {
		return []byte(s)
	}
	// Invalid UTF-8: squeeze through Latin-1 so each rune is one byte.
	// If even that fails, fall back to the raw string bytes.
	enc, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return []byte(s)
	}
	return []byte(enc)
}

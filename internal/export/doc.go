// Package export renders buffer reports for consumption outside the
// editor: a classic 16-octets-per-line hex dump and a plain-text
// analysis report (checksums, detected type, byte-frequency table).
// Both write to an io.Writer so callers choose the destination file.
package export

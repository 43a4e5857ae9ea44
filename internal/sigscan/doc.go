// Package sigscan implements the structure detector of the HexForge
// engine: whole-file type classification, stride-based signature
// scanning, and printable-string extraction.
//
// # Signature Database
//
// Known magic sequences live in an embedded YAML table
// (signatures.yaml) covering the formats a flashing workflow actually
// meets: Android boot and sparse images, ELF, ZIP/APK, PNG, JPEG, gzip
// and tar. The table is ordered; detection takes the first match.
// Buffers matching nothing are classified text or binary by sampling the
// first 1000 bytes for control characters.
//
// # Stride Scanning
//
// Scan visits the buffer at a fixed stride (512 bytes by default) and
// records every signature match at a visited offset as a child of the
// whole-file root node. The stride is a throughput/completeness
// tradeoff: flash partitions and container members sit at coarse
// alignments, so a magic off the stride grid is missed intentionally.
// Callers needing a denser pass lower the stride via ScanOptions.
//
// # Strings
//
// ExtractStrings reports runs of printable ASCII of a minimum length
// (4 by default), capped at 1000 matches with previews truncated to 50
// characters.
package sigscan

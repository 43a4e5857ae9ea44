// Package checksum implements the digest engine of the HexForge toolkit:
// whole-buffer CRC32, MD5, SHA-1 and SHA-256 in a single pass, plus a
// 256-bucket byte distribution histogram.
//
// Reports are pure functions of a buffer snapshot. Nothing here caches
// or incrementally updates a digest across edits; a mutated buffer needs
// a fresh Compute call, and staleness is the caller's responsibility.
//
// MD5 and SHA-1 are kept for interoperability with vendor flashing tools
// and published firmware manifests that still list them, not for
// integrity guarantees.
package checksum

// Package search implements the pattern matcher of the HexForge engine:
// exact byte and text substring search over a loaded buffer, with capped
// result sets, wraparound match cycling, and equal-length replace-all.
//
// # Queries
//
// A query string is interpreted one of two ways:
//   - Hex byte tokens: "FF 00 AB" or contiguous "FF00AB" parse to exact
//     bytes. Malformed hex never hard-fails a search; the input silently
//     falls back to literal text. Replacements use the strict parser
//     instead, because a half-understood pattern must not reach the
//     buffer.
//   - Literal text: matched as its UTF-8 bytes, with a Latin-1 re-encode
//     fallback for inputs that are not valid UTF-8.
//
// # Scanning
//
// The scan is a plain linear pass. Buffers are bounded by the load-time
// size gate and searching is an infrequent interactive operation, so
// O(n*m) is acceptable and result sets stop at 1000 hits with an explicit
// truncation flag.
//
// # Replace
//
// ReplaceAll only touches matches whose length equals the replacement,
// preserving the fixed-size edit model, and applies them in descending
// offset order so earlier offsets stay valid throughout the pass.
package search

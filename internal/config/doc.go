// Package config manages persistent user configuration for HexForge.
//
// Two files live in the OS-appropriate configuration directory
// ($XDG_CONFIG_HOME/hexforge on Linux, %LOCALAPPDATA%\hexforge on
// Windows):
//
//   - config.yaml: editor preferences and analysis tuning knobs
//     (signature-scan stride, large-load confirmation threshold, undo
//     history depth, minimum string length, inspector byte order).
//   - recent.txt: the recent-files list, newline-delimited absolute
//     paths, most-recent-first, at most ten entries. Entries whose file
//     no longer exists are dropped silently the next time the list is
//     read.
//
// The YAML registry is loaded lazily into a process-wide singleton and
// written atomically (temp file + rename) so a crash mid-save cannot
// corrupt it. Missing files mean defaults, never errors.
package config

// Package logging provides structured logging for the HexForge toolkit.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the editor engine. It provides both general logging
// functions and specialized functions for buffer and file operation logging.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (hex dumps, search passes)
//   - Info: Normal operations (loads, saves, exports)
//   - Warn: Non-fatal issues (stale recent entries, truncated results)
//   - Error: Fatal issues (I/O failures, startup errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("File operation",
//	    zap.String("path", "/tmp/boot.img"),
//	    zap.String("event", "loaded"),
//	    zap.Int("size", 8388608),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogFileOp(path, "loaded", size)
//	logging.LogSearch(query, hits, truncated)
//	logging.LogRawBytes("signature window", data)
//
// # Configuration
//
// Logging is silent by default so CLI output stays clean. Set the
// HEXFORGE_LOG_LEVEL environment variable (debug, info, warn, error) or call
// Initialize with an explicit level:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging

// Package ui provides terminal UI components for the hexforge CLI.
//
// This package uses Bubble Tea and Lipgloss to render polished terminal
// output for analysis and patch commands. The components follow a "run
// once and exit" pattern - they render output compellingly but don't
// require user interaction beyond explicit confirmation prompts.
//
// # Architecture
//
// The UI package provides four main component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Progress: Progress bar with step list showing real-time status
//   - Result: Success/failure boxes with styled information
//   - Confirm: Warning boxes with y/N or typed-agreement prompts
//
// Commands drive these directly: render a header, update a progress
// display while the analysis passes run, then print a result box.
//
// # Confirmation Prompts
//
// Two prompt strengths exist. ConfirmLargeLoad gates reading an
// oversized file into memory with a y/N question; PatchWriteConfirmation
// requires typing "I AGREE" before a patched image overwrites its
// source file, because a bad firmware patch can brick the target device.
//
// # Terminal Handling
//
// All components adapt to the terminal width (via golang.org/x/term),
// clamped between MinTerminalWidth and MaxContentWidth. Output renders
// fine on dumb terminals; colors degrade gracefully through lipgloss.
package ui

package session

import (
	"fmt"

	"github.com/draal/hexforge/internal/logging"
)

// Logger is the free-text status sink supplied by the embedding
// application. The session never writes to a process-wide logger on its
// own behalf; whoever constructs it decides where status lines go.
type Logger interface {
	Log(msg string)
}

// Picker abstracts file selection. Implementations return the chosen
// path, or ok=false when the user cancelled.
type Picker interface {
	Pick() (path string, ok bool)
}

// Confirmer answers yes/no questions on the session's behalf: large-load
// confirmation and the save prompt when closing a dirty buffer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ZapLogger forwards session status lines to the global zap logger
type ZapLogger struct{}

// Log implements Logger
func (ZapLogger) Log(msg string) {
	logging.Info(msg)
}

// NopLogger discards all status lines
type NopLogger struct{}

// Log implements Logger
func (NopLogger) Log(msg string) {}

// MemLogger collects status lines in memory, for tests and for UIs that
// render a scrollback of recent status messages.
type MemLogger struct {
	Lines []string
}

// Log implements Logger
func (l *MemLogger) Log(msg string) {
	l.Lines = append(l.Lines, msg)
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// StaticPicker always returns the same path, for non-interactive callers
type StaticPicker string

// Pick implements Picker
func (p StaticPicker) Pick() (string, bool) {
	if p == "" {
		return "", false
	}
	return string(p), true
}

// logf formats a status line into the injected logger
func logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}

package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// NoteSkipped logs when a note file is skipped during a scan
func (l *Logger) NoteSkipped(file, reason string) {
	l.Debug("note skipped",
		"file", file,
		"reason", reason)
}

// NoteCreated logs a successful note creation
func (l *Logger) NoteCreated(file string, tags []string) {
	l.Debug("note created",
		"file", file,
		"tags", tags)
}

// NoteDeleted logs a successful note deletion
func (l *Logger) NoteDeleted(file string) {
	l.Debug("note deleted",
		"file", file)
}

// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/wpbuild/internal/core/ports"
)

// messager is implemented by errors that can report their own message without
// the rest of the chain, such as *zerr.Error.
type messager interface {
	Message() string
}

// metadataer is implemented by errors carrying structured metadata.
type metadataer interface {
	Metadata() map[string]any
}

// joined is implemented by errors produced with errors.Join.
type joined interface {
	Unwrap() []error
}

// errorEntry is one frame of an error chain.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

var _ ports.Logger = (*Logger)(nil)

// New creates a Logger writing pretty output to os.Stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the output destination, keeping the current JSON mode.
// A nil writer selects os.Stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild must be called with mu held.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain. Errors joined with errors.Join are
// logged one after another.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range splitJoined(err) {
		if l.jsonMode {
			l.logger.Error(e.Error(), "chain", chainAttrs(collectErrorEntries(e)))
			continue
		}
		l.logger.Error(formatErrorEntries(collectErrorEntries(e)))
	}
}

func splitJoined(err error) []error {
	if err == nil {
		return nil
	}
	if _, ok := err.(messager); ok {
		return []error{err}
	}
	j, ok := err.(joined)
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range j.Unwrap() {
		out = append(out, splitJoined(e)...)
	}
	return out
}

// collectErrorEntries walks the chain of err. Errors that report their own
// message are unwrapped further; any other error ends the walk with its full text.
// Frames without a message, as created by zerr.With on a plain error, hand
// their metadata to the next frame.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var md map[string]any
		if x, ok := current.(metadataer); ok {
			md = x.Metadata()
		}
		if pending != nil {
			if md == nil {
				md = map[string]any{}
			}
			maps.Copy(md, pending)
			pending = nil
		}

		if m.Message() == "" {
			pending = md
			continue
		}
		entries = append(entries, errorEntry{Message: m.Message(), Metadata: md})
	}

	return entries
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, indent+key+": "+formatValue(entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}

func chainAttrs(entries []errorEntry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		frame := map[string]any{"message": e.Message}
		if len(e.Metadata) > 0 {
			frame["metadata"] = e.Metadata
		}
		out = append(out, frame)
	}
	return out
}

func formatValue(v any) string {
	return slog.AnyValue(v).String()
}

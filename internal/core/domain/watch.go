package domain

import "time"

// WatchBinding maps source patterns to the task run when they change.
type WatchBinding struct {
	// Name identifies the binding in logs.
	Name string
	// Patterns are project relative globs.
	Patterns []string
	// Task is the graph task invoked after the debounce window.
	Task string
	// Debounce is the quiet period required before Task fires.
	Debounce time.Duration
}

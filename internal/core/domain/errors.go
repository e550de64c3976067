package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrTaskAlreadyExists is returned when registering a task whose name is taken.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrInvalidTaskName is returned for unnamed tasks or leaves without an action.
	ErrInvalidTaskName = zerr.New("invalid task")

	// ErrMissingDependency is returned when a composite references an unregistered task.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not registered.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrNoTargetsSpecified is returned when the run command receives no task names.
	ErrNoTargetsSpecified = zerr.New("no tasks specified")

	// ErrBuildExecutionFailed marks a failed top-level run.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrConfig is returned when a required configuration field is absent or malformed.
	ErrConfig = zerr.New("configuration error")

	// ErrCompile is returned when a transform rejects its input.
	ErrCompile = zerr.New("compile error")

	// ErrIO is returned when a source cannot be read or a destination cannot be written.
	ErrIO = zerr.New("io error")

	// ErrCache is returned when a cached artifact cannot be read back.
	ErrCache = zerr.New("cache error")

	// ErrEmptyInput signals that a source glob matched nothing. It is not a failure.
	ErrEmptyInput = zerr.New("no input files")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreOpenFailed is returned when the cache database cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open cache store")

	// ErrWatcherStopped is returned when using a watcher after Stop.
	ErrWatcherStopped = zerr.New("watcher stopped")
)

// categorized tags an error with one of the category sentinels above.
type categorized struct {
	kind error
	err  error
}

func (c *categorized) Error() string {
	return c.err.Error()
}

func (c *categorized) Unwrap() error {
	return c.err
}

// Is reports whether target is the category of c.
func (c *categorized) Is(target error) bool {
	return target == c.kind
}

// Message returns the category name so chain printers show it as the outermost frame.
func (c *categorized) Message() string {
	return c.kind.Error()
}

// Classify tags err with kind so that errors.Is(err, kind) holds.
// The original chain stays reachable through errors.Is and errors.As.
// If err already carries a category, it is returned unchanged.
func Classify(kind, err error) error {
	if err == nil {
		return nil
	}
	if Category(err) != nil {
		return err
	}
	return &categorized{kind: kind, err: err}
}

// Category returns the category sentinel carried by err, or nil.
func Category(err error) error {
	for _, kind := range []error{ErrConfig, ErrCompile, ErrIO, ErrCache, ErrEmptyInput} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Cause returns the error wrapped by Classify, or err itself.
func Cause(err error) error {
	var c *categorized
	if errors.As(err, &c) {
		return c.err
	}
	return err
}

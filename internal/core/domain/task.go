package domain

import "context"

// TaskKind distinguishes leaf tasks from composites.
type TaskKind uint8

const (
	// KindLeaf runs a single action.
	KindLeaf TaskKind = iota
	// KindSeries runs its children one after another and stops at the first failure.
	KindSeries
	// KindParallel runs all children concurrently and reports every failure.
	KindParallel
)

// String returns the lowercase name of the kind.
func (k TaskKind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindParallel:
		return "parallel"
	default:
		return "leaf"
	}
}

// Action is the unit of work behind a leaf task.
type Action func(ctx context.Context) error

// Task represents a named node in the build graph.
type Task struct {
	Name     InternedString
	Kind     TaskKind
	Children []InternedString
	Action   Action
	// Description is shown by the tasks listing.
	Description string
}

// Leaf builds a leaf task.
func Leaf(name, description string, action Action) *Task {
	return &Task{
		Name:        NewInternedString(name),
		Kind:        KindLeaf,
		Action:      action,
		Description: description,
	}
}

// Series builds a composite that runs children in order.
func Series(name, description string, children ...string) *Task {
	return &Task{
		Name:        NewInternedString(name),
		Kind:        KindSeries,
		Children:    InternAll(children...),
		Description: description,
	}
}

// Parallel builds a composite that runs children concurrently.
func Parallel(name, description string, children ...string) *Task {
	return &Task{
		Name:        NewInternedString(name),
		Kind:        KindParallel,
		Children:    InternAll(children...),
		Description: description,
	}
}

// Package domain contains the core domain models of the asset pipeline.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Graph is the registry of named build tasks.
// It is populated once at startup and only read afterwards.
type Graph struct {
	tasks map[InternedString]Task
	order []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks: make(map[InternedString]Task),
	}
}

// Register adds a task to the graph.
// It returns ErrTaskAlreadyExists if a task with the same name is already registered.
func (g *Graph) Register(t *Task) error {
	if t.Name.IsZero() || t.Name.String() == "" {
		return ErrInvalidTaskName
	}
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(zerr.Wrap(ErrTaskAlreadyExists, t.Name.String()), "task", t.Name.String())
	}
	if t.Kind == KindLeaf && t.Action == nil {
		return zerr.With(zerr.Wrap(ErrInvalidTaskName, "leaf task has no action"), "task", t.Name.String())
	}
	g.tasks[t.Name] = *t
	g.order = append(g.order, t.Name)
	return nil
}

// Get returns the task with the given name.
func (g *Graph) Get(name string) (Task, bool) {
	t, ok := g.tasks[NewInternedString(name)]
	return t, ok
}

// Len returns the number of registered tasks.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// Names returns the registered task names sorted alphabetically.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.tasks))
	for name := range g.tasks {
		names = append(names, name.String())
	}
	slices.Sort(names)
	return names
}

// Validate checks that every composite references registered tasks and that
// the graph contains no cycles.
func (g *Graph) Validate() error {
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		task, exists := g.tasks[u]
		if !exists {
			parent := ""
			if len(path) > 1 {
				parent = path[len(path)-2].String()
			}
			err := zerr.Wrap(ErrMissingDependency, parent+" references "+u.String())
			return zerr.With(zerr.With(err, "dependency", u.String()), "task", parent)
		}

		for _, child := range task.Children {
			if visited[child] == 1 {
				return buildCycleError(path, child)
			}
			if visited[child] == 0 {
				if err := visit(child); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	// Registration order keeps error reporting deterministic.
	for _, name := range g.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(zerr.Wrap(ErrCycleDetected, cyclePath), "cycle", cyclePath)
}

// Walk yields tasks in registration order.
func (g *Graph) Walk() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, name := range g.order {
			if !yield(g.tasks[name]) {
				return
			}
		}
	}
}

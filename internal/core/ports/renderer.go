package ports

import "time"

// Renderer presents task progress.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called when a run starts with the requested targets.
	OnPlanEmit(targets []string)

	// OnTaskStart is called when a task begins execution.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskLog is called when a task emits output.
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when a task finishes execution.
	OnTaskComplete(spanID string, endTime time.Time, err error)

	// Flush writes any buffered output.
	Flush() error
}

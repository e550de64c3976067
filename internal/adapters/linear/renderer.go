// Package linear renders task progress as chronological, timestamped lines.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/wpbuild/internal/ui/output"
	"go.trai.ch/wpbuild/internal/ui/style"
)

const clockLayout = "15:04:05"

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer. Every line starts with a wall clock
// stamp; task output is buffered until a full line is available.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output
	now    func() time.Time

	mu      sync.Mutex
	tasks   map[string]*taskState // spanID -> task state
	buffers map[string]*bytes.Buffer
}

type taskState struct {
	name      string
	startTime time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock used to stamp task output lines.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer, opts ...Option) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	r := &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.New(stderr),
		now:     time.Now,
		tasks:   make(map[string]*taskState),
		buffers: make(map[string]*bytes.Buffer),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnPlanEmit prints the requested tasks.
func (r *Renderer) OnPlanEmit(targets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = r.name(t)
	}
	_, _ = fmt.Fprintf(r.stderr, "%s Using tasks %s\n", r.stamp(r.now()), strings.Join(names, ", "))
}

// OnTaskStart prints a task start message.
func (r *Renderer) OnTaskStart(spanID, _ string, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = &taskState{name: name, startTime: startTime}
	r.buffers[spanID] = new(bytes.Buffer)

	_, _ = fmt.Fprintf(r.stderr, "%s Starting %s...\n", r.stamp(startTime), r.name(name))
}

// OnTaskLog buffers log data and prints complete lines.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			if len(line) > 0 {
				rest := new(bytes.Buffer)
				rest.Write(line)
				r.buffers[spanID] = rest
			}
			break
		}
		r.printLineLocked(task.name, line)
	}
}

// OnTaskComplete flushes remaining output and prints the duration.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	r.flushBufferLocked(spanID)

	took := r.output.String(FormatDuration(endTime.Sub(task.startTime))).
		Foreground(r.output.Color(string(style.Iris))).String()
	if err != nil {
		cross := r.output.String(style.Cross).Foreground(r.output.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s %s errored after %s\n", r.stamp(endTime), cross, r.name(task.name), took)
	} else {
		_, _ = fmt.Fprintf(r.stderr, "%s Finished %s after %s\n", r.stamp(endTime), r.name(task.name), took)
	}

	delete(r.tasks, spanID)
	delete(r.buffers, spanID)
}

// Flush prints every partial line still buffered.
func (r *Renderer) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}
	return nil
}

// flushBufferLocked must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(task.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked must be called with r.mu held.
func (r *Renderer) printLineLocked(taskName string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "%s [%s] %s\n", r.stamp(r.now()), taskName, line)
}

func (r *Renderer) stamp(t time.Time) string {
	return "[" + r.output.String(t.Format(clockLayout)).Foreground(r.output.Color(string(style.Slate))).String() + "]"
}

func (r *Renderer) name(task string) string {
	return "'" + r.output.String(task).Foreground(r.output.Color(string(style.Cyan))).String() + "'"
}

// FormatDuration renders d the way task runners print elapsed time:
// microseconds, milliseconds, seconds with two decimals, or minutes.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return strconv.FormatInt(d.Microseconds(), 10) + " μs"
	case d < time.Second:
		return strconv.FormatInt(d.Milliseconds(), 10) + " ms"
	case d < time.Minute:
		return trimDecimals(d.Seconds()) + " s"
	default:
		return trimDecimals(d.Minutes()) + " min"
	}
}

func trimDecimals(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

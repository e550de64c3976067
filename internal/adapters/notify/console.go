// Package notify alerts the developer about failed stages on the terminal.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/wpbuild/internal/ui/output"
	"go.trai.ch/wpbuild/internal/ui/style"
)

var _ ports.Notifier = (*Console)(nil)

// Console implements ports.Notifier. It prints a marked ERROR line followed
// by the error message, and rings the terminal bell.
type Console struct {
	mu  sync.Mutex
	out io.Writer
	// tty enables the coloured banner.
	tty bool
}

// NewConsole creates a Console writing to w, or os.Stderr when w is nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{out: w, tty: output.ColorProfile(w) != termenv.Ascii}
}

// Notify presents the failure of stage.
func (c *Console) Notify(stage string, err error) {
	if err == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	header := "ERROR"
	if c.tty {
		header = style.Banner(" ERROR ")
	}

	var b strings.Builder
	b.WriteString(style.Bell)
	fmt.Fprintf(&b, "\n%s %s %s\n", header, style.Arrow, stage)
	for line := range strings.SplitSeq(strings.TrimRight(err.Error(), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	_, _ = io.WriteString(c.out, b.String())
}

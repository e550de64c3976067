// Package style provides the shared palette and icons of the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Cyan   = lipgloss.Color("#0EA5E9")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Bell rings the terminal bell.
const Bell = "\a"

// Banner renders a bold framed line used for failure notifications.
func Banner(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(Red).
		Render(text)
}

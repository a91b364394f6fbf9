package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/halo/internal/ui/style"
)

// DividerWidth is the default width for divider lines.
const DividerWidth = 64

// Report prints what a wrapped command produced once its spinner has
// finished: the command line, a divider, then the captured output.
type Report struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// NewReport creates a report writing to w.
func NewReport(w io.Writer) *Report {
	r := &Report{w: w, renderer: lipgloss.NewRenderer(w)}
	if style.ColorsDisabled() {
		r.renderer.SetColorProfile(termenv.Ascii)
	}
	return r
}

func (r *Report) muted(s string) string {
	return r.renderer.NewStyle().Foreground(style.ColorMuted).Render(s)
}

// CommandPrompt renders the command that was executed.
// Shows: $ make build
func (r *Report) CommandPrompt(cmd string) {
	fmt.Fprintf(r.w, "%s %s\n", r.muted("$"), cmd)
}

// Divider renders a thin horizontal line.
func (r *Report) Divider() {
	fmt.Fprintf(r.w, "%s\n", r.muted(strings.Repeat("─", DividerWidth)))
}

// Output writes captured output, adding a final newline if it lacks one.
// Empty output writes nothing.
func (r *Report) Output(out []byte) {
	if len(out) == 0 {
		return
	}
	_, _ = r.w.Write(out)
	if out[len(out)-1] != '\n' {
		fmt.Fprintln(r.w)
	}
}

// Section renders the prompt, a divider and the output, in that order.
func (r *Report) Section(cmd string, stdout, stderr []byte) {
	r.CommandPrompt(cmd)
	r.Divider()
	r.Output(stdout)
	r.Output(stderr)
}

// FormatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}

package ui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/ui/style"
)

// BubbleSpinner converts a frame set for use with the Bubbles spinner, so
// Bubble Tea programs animate exactly like the standalone spinner.
func BubbleSpinner(set frames.Set) spinner.Spinner {
	fps := set.Interval
	if fps <= 0 {
		fps = frames.DefaultInterval
	}
	return spinner.Spinner{
		Frames: append([]string(nil), set.Frames...),
		FPS:    fps,
	}
}

type previewDoneMsg struct{}

// PreviewModel is a Bubble Tea model that animates one frame set for a
// fixed time, then shows the success line.
type PreviewModel struct {
	spinner  spinner.Model
	set      frames.Set
	label    string
	duration time.Duration
	done     bool
	quitting bool
}

// NewPreview creates a preview of set labelled with label. A zero duration
// runs until the user quits.
func NewPreview(set frames.Set, label, color string, duration time.Duration) PreviewModel {
	frameStyle := lipgloss.NewStyle().Bold(true)
	if c, ok := style.ParseColor(color); ok {
		frameStyle = frameStyle.Foreground(c)
	}

	return PreviewModel{
		spinner:  spinner.New(spinner.WithSpinner(BubbleSpinner(set)), spinner.WithStyle(frameStyle)),
		set:      set,
		label:    label,
		duration: duration,
	}
}

// Init starts the animation and, if set, the preview timer.
func (m PreviewModel) Init() tea.Cmd {
	if m.duration <= 0 {
		return m.spinner.Tick
	}
	return tea.Batch(m.spinner.Tick, tea.Tick(m.duration, func(time.Time) tea.Msg {
		return previewDoneMsg{}
	}))
}

// Update handles key presses, the preview timer and spinner ticks.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case previewDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done || m.quitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner, or the final line once the preview is over.
func (m PreviewModel) View() string {
	muted := lipgloss.NewStyle().Foreground(style.ColorMuted)

	if m.done {
		check := lipgloss.NewStyle().Foreground(style.ColorSuccess).Render(frames.StatusSuccess.Glyph(true))
		return check + " " + m.label + " " + muted.Render("("+m.set.Name+")") + "\n"
	}
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " " + m.label + "\n" + muted.Render("q to quit") + "\n"
}

// Done reports whether the preview ran to completion.
func (m PreviewModel) Done() bool {
	return m.done
}

// RunPreview runs a preview program on the given streams.
func RunPreview(m PreviewModel, in io.Reader, out io.Writer) (PreviewModel, error) {
	p := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	return final.(PreviewModel), nil
}

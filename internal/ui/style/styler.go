package style

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/hostenv"
)

var colorsDisabled atomic.Bool

// DisableColors switches every styler created afterwards, and the default
// lipgloss renderer, to monochrome output (for --no-color).
func DisableColors() {
	colorsDisabled.Store(true)
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorsDisabled reports whether DisableColors was called.
func ColorsDisabled() bool {
	return colorsDisabled.Load()
}

// Styler applies bold and color to spinner output for one stream. The color
// profile follows the stream, so a spinner on a pipe draws plain text.
type Styler struct {
	renderer  *lipgloss.Renderer
	supported bool
}

// NewStyler creates a styler whose color profile is detected from w.
func NewStyler(w io.Writer) *Styler {
	s := &Styler{
		renderer:  lipgloss.NewRenderer(w),
		supported: hostenv.IsSupported(),
	}
	if colorsDisabled.Load() {
		s.renderer.SetColorProfile(termenv.Ascii)
	}
	return s
}

// SetColorProfile overrides the detected profile.
func (s *Styler) SetColorProfile(p termenv.Profile) {
	s.renderer.SetColorProfile(p)
}

// SetSupported overrides the detected host styling support.
func (s *Styler) SetSupported(supported bool) {
	s.supported = supported
}

// Supported reports whether the host can show unicode glyphs and styling.
func (s *Styler) Supported() bool {
	return s.supported
}

// Frame renders frame in bold and the named color. An unknown or empty color
// leaves it bold only; an unsupported host gets the frame untouched.
func (s *Styler) Frame(frame, color string) string {
	if !s.supported || frame == "" {
		return frame
	}
	style := s.renderer.NewStyle().Bold(true)
	if c, ok := ParseColor(color); ok {
		style = style.Foreground(c)
	}
	return style.Render(frame)
}

// Text styles spinner text. Text is only styled when a color is set.
func (s *Styler) Text(text, color string) string {
	if color == "" {
		return text
	}
	return s.Frame(text, color)
}

// Status renders the glyph for a persisted outcome in its semantic color.
func (s *Styler) Status(st frames.Status) string {
	glyph := st.Glyph(s.supported)
	if !s.supported {
		return glyph
	}
	return s.renderer.NewStyle().Foreground(StatusColor(st)).Render(glyph)
}

// Muted renders secondary text such as timings.
func (s *Styler) Muted(text string) string {
	return s.renderer.NewStyle().Foreground(ColorMuted).Render(text)
}

package style

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/stretchr/testify/assert"
)

func ansiStyler() *Styler {
	s := NewStyler(&bytes.Buffer{})
	s.SetColorProfile(termenv.ANSI)
	s.SetSupported(true)
	return s
}

func TestStylerFrame(t *testing.T) {
	s := ansiStyler()

	colored := s.Frame("⠋", "cyan")
	assert.Contains(t, colored, "⠋")
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "36", "cyan foreground")

	boldOnly := s.Frame("⠋", "not-a-color")
	assert.Contains(t, boldOnly, "⠋")
	assert.Contains(t, boldOnly, "\x1b[1")
	assert.NotContains(t, boldOnly, "36")
}

func TestStylerFrame_Unsupported(t *testing.T) {
	s := ansiStyler()
	s.SetSupported(false)

	assert.Equal(t, "-", s.Frame("-", "cyan"))
	assert.False(t, s.Supported())
}

func TestStylerFrame_PlainStream(t *testing.T) {
	// A buffer isn't a terminal, so nothing gets styled.
	s := NewStyler(&bytes.Buffer{})
	s.SetSupported(true)
	s.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "⠋", s.Frame("⠋", "cyan"))
}

func TestStylerText(t *testing.T) {
	s := ansiStyler()

	assert.Equal(t, "Loading", s.Text("Loading", ""))
	assert.Contains(t, s.Text("Loading", "red"), "31")
}

func TestStylerStatus(t *testing.T) {
	s := ansiStyler()

	out := s.Status(frames.StatusSuccess)
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "32", "green foreground")

	s.SetSupported(false)
	assert.Equal(t, "×", s.Status(frames.StatusFail))
}

func TestDisableColors(t *testing.T) {
	t.Cleanup(func() { colorsDisabled.Store(false) })

	assert.NotPanics(t, DisableColors)

	s := NewStyler(&bytes.Buffer{})
	s.SetSupported(true)
	assert.Equal(t, "x", s.Frame("x", "red"))
}

package halo

import (
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/halo/internal/hostenv"
	"github.com/rileyhilliard/halo/internal/textutil"
)

// RenderTarget is where a spinner draws. Implementations are only called with
// the spinner's lock held, so they don't need their own synchronization for
// spinner use.
type RenderTarget interface {
	// Render redraws the current line in place.
	Render(line string) error
	// Clear erases the current line and leaves the cursor at its start.
	Clear() error
	// Persist writes a final line that later output won't overwrite.
	Persist(line string) error
	HideCursor()
	ShowCursor()
	// Width is the number of columns available for a line.
	Width() int
}

var clearToEOL = termenv.CSI + termenv.EraseLineRightSeq

// PlainTerminal draws on an ANSI terminal (or a pipe, minus the cursor
// toggling) using carriage returns and line clearing.
type PlainTerminal struct {
	w           io.Writer
	out         *termenv.Output
	interactive bool
	width       func() int
}

// NewPlainTerminal creates a terminal target for w. Cursor visibility is only
// touched when w is a terminal.
func NewPlainTerminal(w io.Writer) *PlainTerminal {
	return &PlainTerminal{
		w:           w,
		out:         termenv.NewOutput(w),
		interactive: hostenv.IsInteractive(w),
		width:       func() int { return textutil.MeasureWidth(w) },
	}
}

func (t *PlainTerminal) write(s string) error {
	_, err := t.w.Write(textutil.SafeEncode(s))
	return err
}

// Render moves to the line start, writes line and clears whatever is left of
// the previous frame.
func (t *PlainTerminal) Render(line string) error {
	return t.write("\r" + line + clearToEOL)
}

// Clear erases the current line.
func (t *PlainTerminal) Clear() error {
	return t.write("\r" + clearToEOL)
}

// Persist writes line followed by a newline.
func (t *PlainTerminal) Persist(line string) error {
	return t.write("\r" + line + clearToEOL + "\n")
}

// HideCursor hides the cursor on interactive terminals.
func (t *PlainTerminal) HideCursor() {
	if t.interactive {
		t.out.HideCursor()
	}
}

// ShowCursor shows the cursor on interactive terminals.
func (t *PlainTerminal) ShowCursor() {
	if t.interactive {
		t.out.ShowCursor()
	}
}

// Width returns the current terminal width, re-measured on every call so
// resizes are picked up on the next frame.
func (t *PlainTerminal) Width() int {
	return t.width()
}

// NotebookSink draws into a notebook output cell. Cells honor carriage
// returns but not escape sequences, so stale characters are blanked with
// spaces and the cursor is never touched.
type NotebookSink struct {
	mu    sync.Mutex
	w     io.Writer
	last  int
	width int
}

// NewNotebookSink creates a notebook target for w.
func NewNotebookSink(w io.Writer) *NotebookSink {
	return &NotebookSink{w: w, width: textutil.MeasureWidth(nil)}
}

func (n *NotebookSink) draw(line, end string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	w := textutil.Width(line)
	pad := ""
	if n.last > w {
		pad = strings.Repeat(" ", n.last-w)
	}
	n.last = w
	if end != "" {
		n.last = 0
	}
	_, err := n.w.Write(textutil.SafeEncode("\r" + line + pad + end))
	return err
}

// Render overwrites the cell's last line.
func (n *NotebookSink) Render(line string) error {
	return n.draw(line, "")
}

// Clear blanks the cell's last line.
func (n *NotebookSink) Clear() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.last == 0 {
		return nil
	}
	_, err := n.w.Write([]byte("\r" + strings.Repeat(" ", n.last) + "\r"))
	n.last = 0
	return err
}

// Persist writes line and moves on to a new line.
func (n *NotebookSink) Persist(line string) error {
	return n.draw(line, "\n")
}

// HideCursor is a no-op; notebooks have no cursor.
func (n *NotebookSink) HideCursor() {}

// ShowCursor is a no-op; notebooks have no cursor.
func (n *NotebookSink) ShowCursor() {}

// Width returns COLUMNS when set, otherwise the default width.
func (n *NotebookSink) Width() int {
	return n.width
}

// NewTarget picks the target for an environment.
func NewTarget(env hostenv.Environment, w io.Writer) RenderTarget {
	if env.IsNotebook() {
		return NewNotebookSink(w)
	}
	return NewPlainTerminal(w)
}

// Package textutil holds the text helpers used by the spinner render loop:
// terminal width probing, cell-aware truncation, and lenient UTF-8 handling.
// None of these return errors; the render loop must never fail on text alone.
package textutil

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is used whenever the terminal can't tell us its width.
const DefaultWidth = 80

// SizeFunc reports a terminal's size for a file descriptor.
type SizeFunc func(fd int) (width, height int, err error)

type fdWriter interface {
	Fd() uintptr
}

// MeasureWidth returns the column count of the terminal behind w.
// A positive COLUMNS variable wins. Non-terminal streams, failed queries and
// a reported width of 0 all fall back to DefaultWidth.
func MeasureWidth(w io.Writer) int {
	return measureWidth(w, os.Getenv, term.GetSize)
}

func measureWidth(w io.Writer, getenv func(string) string, size SizeFunc) int {
	if cols, err := strconv.Atoi(getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}

	f, ok := w.(fdWriter)
	if !ok {
		return DefaultWidth
	}

	width, _, err := size(int(f.Fd()))
	if err != nil {
		return DefaultWidth
	}
	return Columns(width)
}

// Columns normalizes a reported width: 0 (disconnected or not a terminal)
// becomes DefaultWidth.
func Columns(reported int) int {
	if reported <= 0 {
		return DefaultWidth
	}
	return reported
}

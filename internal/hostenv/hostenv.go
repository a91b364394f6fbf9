// Package hostenv classifies the host a spinner is drawing into.
//
// Detection happens once, when a spinner is built. The result only decides
// which render target the spinner uses: a plain terminal that understands
// cursor movement, or a notebook output cell that only understands carriage
// returns.
package hostenv

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
)

// Environment is the kind of host the process is attached to.
type Environment int

const (
	Terminal Environment = iota
	IPython
	Jupyter
)

func (e Environment) String() string {
	switch e {
	case IPython:
		return "ipython"
	case Jupyter:
		return "jupyter"
	default:
		return "terminal"
	}
}

// IsNotebook reports whether output goes to a notebook-style cell.
func (e Environment) IsNotebook() bool {
	return e == Jupyter
}

// Parse converts a config value ("terminal", "ipython", "jupyter") to an Environment.
func Parse(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "terminal":
		return Terminal, nil
	case "ipython":
		return IPython, nil
	case "jupyter", "notebook":
		return Jupyter, nil
	}
	return Terminal, fmt.Errorf("unknown environment %q (expected terminal, ipython or jupyter)", name)
}

// Jupyter kernels export these to every child process.
var jupyterMarkers = []string{"JPY_PARENT_PID", "JPY_SESSION_NAME"}

// OverrideEnv forces the environment ("terminal", "ipython", "jupyter").
// IPython has no process-level marker, so this is the only way to select it
// besides configuration.
const OverrideEnv = "HALO_ENVIRONMENT"

// Detect inspects the process environment once.
func Detect() Environment {
	return detect(os.LookupEnv)
}

func detect(lookup func(string) (string, bool)) Environment {
	if v, ok := lookup(OverrideEnv); ok && v != "" {
		if env, err := Parse(v); err == nil {
			return env
		}
	}
	for _, key := range jupyterMarkers {
		if v, ok := lookup(key); ok && v != "" {
			return Jupyter
		}
	}
	return Terminal
}

// IsSupported reports whether the host can show unicode glyphs and ANSI styling.
// Classic Windows consoles can't; Windows Terminal sets WT_SESSION and can.
func IsSupported() bool {
	return isSupported(runtime.GOOS, os.Getenv)
}

func isSupported(goos string, getenv func(string) string) bool {
	if goos != "windows" {
		return true
	}
	return getenv("WT_SESSION") != "" || getenv("TERM_PROGRAM") == "vscode"
}

type fdWriter interface {
	Fd() uintptr
}

// IsInteractive reports whether w is attached to a terminal.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Package frames holds the spinner animations: built-in presets, custom
// frame sets, the status glyphs used for persisted lines, and the text
// animations used when a message is wider than the terminal.
package frames

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
)

// DefaultInterval applies to custom frame sets that don't specify one.
const DefaultInterval = 100 * time.Millisecond

// Preset names used when no spinner is requested.
const (
	DefaultPreset  = "dots"
	FallbackPreset = "line"
)

// Set is an ordered, cyclic collection of frames plus the delay between them.
type Set struct {
	Name     string
	Frames   []string
	Interval time.Duration
}

// Len returns the number of frames.
func (s Set) Len() int {
	return len(s.Frames)
}

// Frame returns the frame at index, wrapping around.
func (s Set) Frame(index int) string {
	return s.Frames[Wrap(index, len(s.Frames))]
}

// MaxWidth returns the widest frame in cells.
func (s Set) MaxWidth(width func(string) int) int {
	widest := 0
	for _, f := range s.Frames {
		if w := width(f); w > widest {
			widest = w
		}
	}
	return widest
}

// Next advances a frame index: (index + 1) mod length.
func Next(index, length int) int {
	if length <= 0 {
		return 0
	}
	return Wrap(index+1, length)
}

// Wrap maps any index into [0, length).
func Wrap(index, length int) int {
	if length <= 0 {
		return 0
	}
	index %= length
	if index < 0 {
		index += length
	}
	return index
}

func preset(interval int, frames ...string) Set {
	return Set{Frames: frames, Interval: time.Duration(interval) * time.Millisecond}
}

// Frame data follows the cli-spinners collection.
var presets = map[string]Set{
	"dots":                preset(80, "⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"),
	"dots2":               preset(80, "⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"),
	"dots3":               preset(80, "⠋", "⠙", "⠚", "⠞", "⠖", "⠦", "⠴", "⠲", "⠳", "⠓"),
	"line":                preset(130, "-", "\\", "|", "/"),
	"line2":               preset(100, "⠂", "-", "–", "—", "–", "-"),
	"pipe":                preset(100, "┤", "┘", "┴", "└", "├", "┌", "┬", "┐"),
	"simpleDots":          preset(400, ".  ", ".. ", "...", "   "),
	"simpleDotsScrolling": preset(200, ".  ", ".. ", "...", " ..", "  .", "   "),
	"star":                preset(70, "✶", "✸", "✹", "✺", "✹", "✷"),
	"flip":                preset(70, "_", "_", "_", "-", "`", "`", "'", "´", "-", "_", "_", "_"),
	"hamburger":           preset(100, "☱", "☲", "☴"),
	"growVertical":        preset(120, "▁", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃"),
	"growHorizontal":      preset(120, "▏", "▎", "▍", "▌", "▋", "▊", "▉", "▊", "▋", "▌", "▍", "▎"),
	"balloon":             preset(140, " ", ".", "o", "O", "@", "*", " "),
	"noise":               preset(100, "▓", "▒", "░"),
	"bounce":              preset(120, "⠁", "⠂", "⠄", "⠂"),
	"boxBounce":           preset(120, "▖", "▘", "▝", "▗"),
	"triangle":            preset(50, "◢", "◣", "◤", "◥"),
	"arc":                 preset(100, "◜", "◠", "◝", "◞", "◡", "◟"),
	"circle":              preset(120, "◡", "⊙", "◠"),
	"squareCorners":       preset(180, "◰", "◳", "◲", "◱"),
	"circleQuarters":      preset(120, "◴", "◷", "◶", "◵"),
	"circleHalves":        preset(50, "◐", "◓", "◑", "◒"),
	"toggle":              preset(250, "⊶", "⊷"),
	"arrow":               preset(100, "←", "↖", "↑", "↗", "→", "↘", "↓", "↙"),
	"point":               preset(125, "∙∙∙", "●∙∙", "∙●∙", "∙∙●", "∙∙∙"),
	"layer":               preset(150, "-", "=", "≡"),
	"moon":                preset(80, "🌑 ", "🌒 ", "🌓 ", "🌔 ", "🌕 ", "🌖 ", "🌗 ", "🌘 "),
	"earth":               preset(180, "🌍 ", "🌎 ", "🌏 "),
	"bouncingBar": preset(80,
		"[    ]", "[=   ]", "[==  ]", "[=== ]", "[ ===]", "[  ==]", "[   =]", "[    ]",
		"[   =]", "[  ==]", "[ ===]", "[====]", "[=== ]", "[==  ]", "[=   ]"),
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named preset.
func Lookup(name string) (Set, error) {
	p, ok := presets[name]
	if !ok {
		return Set{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("There's no spinner called '%s'", name),
			"Run 'halo list' to see the built-in spinners, or pass your own frames.")
	}
	set := Set{Name: name, Frames: append([]string(nil), p.Frames...), Interval: p.Interval}
	return set, nil
}

// Default returns the default preset for the host: "dots" when unicode is
// supported, "line" otherwise.
func Default(supported bool) Set {
	name := DefaultPreset
	if !supported {
		name = FallbackPreset
	}
	set, _ := Lookup(name)
	return set
}

// Resolve picks a preset by name, falling back to Default for an empty name.
func Resolve(name string, supported bool) (Set, error) {
	if name == "" {
		return Default(supported), nil
	}
	return Lookup(name)
}

// Custom builds a Set from caller-supplied frames. A zero interval means
// DefaultInterval.
func Custom(frames []string, interval time.Duration) (Set, error) {
	if len(frames) == 0 {
		return Set{}, errors.New(errors.ErrConfig,
			"A custom spinner needs at least one frame",
			"Pass one or more frames, or pick a built-in spinner by name.")
	}
	for i, f := range frames {
		if strings.ContainsAny(f, "\r\n") {
			return Set{}, errors.New(errors.ErrConfig,
				fmt.Sprintf("Frame %d spans more than one line", i),
				"Spinner frames are redrawn in place, so each one has to fit on a single line.")
		}
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Set{Name: "custom", Frames: append([]string(nil), frames...), Interval: interval}, nil
}

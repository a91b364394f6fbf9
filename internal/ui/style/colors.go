// Package style holds halo's colors and the Styler that applies them to
// spinner frames, text and status glyphs.
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess (green)  - success glyph
//	ColorError   (red)    - failure glyph
//	ColorWarning (yellow) - warning glyph
//	ColorInfo    (blue)   - info glyph
//	ColorMuted   (gray)   - secondary text, timing info
//
// Spinner colors are chosen by name (see ColorNames). Use DisableColors() to
// switch to monochrome output (for --no-color).
package style

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/halo/internal/frames"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "4" // Blue
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorAccent  lipgloss.Color = "6" // Cyan, the default spinner color
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// DefaultColor is the spinner color used when none is configured.
const DefaultColor = "cyan"

// Basic ANSI colors, addressable by name from flags and config.
var namedColors = map[string]lipgloss.Color{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"grey":    "8",
	"gray":    "8",
}

// ParseColor looks up a named ANSI color. Names are case-insensitive.
func ParseColor(name string) (lipgloss.Color, bool) {
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ColorNames lists the accepted color names.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StatusColor returns the color used for a status glyph.
func StatusColor(s frames.Status) lipgloss.Color {
	switch s {
	case frames.StatusSuccess:
		return ColorSuccess
	case frames.StatusFail:
		return ColorError
	case frames.StatusWarning:
		return ColorWarning
	default:
		return ColorInfo
	}
}

package textutil

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Width returns the number of terminal cells s occupies, ignoring escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s so it occupies at most width cells. Overflow is simply
// dropped; no ellipsis is added. Escape sequences are preserved.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// Cut returns the cells of s in [left, right).
func Cut(s string, left, right int) string {
	if right <= left {
		return ""
	}
	return ansi.Cut(s, left, right)
}

// SafeDecode turns raw bytes into text. Valid UTF-8 comes back as-is;
// malformed input is returned byte-for-byte unchanged rather than repaired.
func SafeDecode(b []byte) string {
	out, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// SafeEncode turns text into bytes for a stream. Valid UTF-8 is passed
// through; malformed input is returned unchanged.
func SafeEncode(s string) []byte {
	out, _, err := transform.String(encoding.UTF8Validator, s)
	if err != nil {
		return []byte(s)
	}
	return []byte(out)
}

// IsTextLike reports whether v can be rendered as spinner text or a frame.
// Only needed for dynamic input such as decoded config values.
func IsTextLike(v any) bool {
	switch v.(type) {
	case string, []byte, []rune, fmt.Stringer:
		return true
	}
	return false
}

// AsText converts a text-like value to a string.
func AsText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return SafeDecode(t), true
	case []rune:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}

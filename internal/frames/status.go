package frames

// Status is the outcome shown on a persisted line.
type Status int

const (
	StatusSuccess Status = iota
	StatusFail
	StatusWarning
	StatusInfo
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFail:
		return "fail"
	case StatusWarning:
		return "warning"
	case StatusInfo:
		return "info"
	}
	return "unknown"
}

// Same glyphs as log-symbols; the fallbacks render on consoles without unicode.
var (
	statusGlyphs   = [...]string{StatusSuccess: "✔", StatusFail: "✖", StatusWarning: "⚠", StatusInfo: "ℹ"}
	fallbackGlyphs = [...]string{StatusSuccess: "√", StatusFail: "×", StatusWarning: "‼", StatusInfo: "i"}
)

// Glyph returns the symbol for a status.
func (s Status) Glyph(supported bool) string {
	if s < StatusSuccess || s > StatusInfo {
		return " "
	}
	if !supported {
		return fallbackGlyphs[s]
	}
	return statusGlyphs[s]
}

// ParseStatus maps CLI/config names to a Status.
func ParseStatus(name string) (Status, bool) {
	switch name {
	case "success", "succeed", "ok":
		return StatusSuccess, true
	case "fail", "error":
		return StatusFail, true
	case "warn", "warning":
		return StatusWarning, true
	case "info":
		return StatusInfo, true
	}
	return 0, false
}

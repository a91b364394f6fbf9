package halo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/hostenv"
	"github.com/rileyhilliard/halo/internal/logger"
	"github.com/rileyhilliard/halo/internal/ui/style"
)

// Placement is the side of the text the spinner is drawn on.
type Placement int

const (
	PlacementLeft Placement = iota
	PlacementRight
)

func (p Placement) String() string {
	if p == PlacementRight {
		return "right"
	}
	return "left"
}

// ParsePlacement converts "left" or "right" to a Placement.
func ParsePlacement(name string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left":
		return PlacementLeft, nil
	case "right":
		return PlacementRight, nil
	}
	return PlacementLeft, errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown spinner placement '%s'", name),
		"Use left or right.")
}

// Animation controls how text wider than the terminal is shown.
type Animation = frames.Animation

const (
	AnimationNone    = frames.AnimationNone
	AnimationBounce  = frames.AnimationBounce
	AnimationMarquee = frames.AnimationMarquee
)

// ParseAnimation converts "bounce", "marquee" or "" to an Animation.
func ParseAnimation(name string) (Animation, error) {
	return frames.ParseAnimation(name)
}

// Environment is the kind of host the spinner draws into.
type Environment = hostenv.Environment

const (
	EnvTerminal = hostenv.Terminal
	EnvIPython  = hostenv.IPython
	EnvJupyter  = hostenv.Jupyter
)

type options struct {
	text      string
	color     string
	textColor string
	spinner   string
	frames    []string
	custom    bool
	interval  time.Duration
	placement Placement
	animation Animation
	indent    string
	stream    io.Writer
	enabled   bool
	target    RenderTarget
	env       *hostenv.Environment
	supported *bool
	log       logger.Logger
}

func defaultOptions() options {
	return options{
		color:   style.DefaultColor,
		enabled: true,
	}
}

// Option configures a Spinner.
type Option func(*options)

// WithText sets the message shown next to the spinner.
func WithText(text string) Option {
	return func(o *options) { o.text = text }
}

// WithColor sets the spinner color by name (red, green, cyan, ...). An empty
// or unknown name draws the spinner bold without a color.
func WithColor(color string) Option {
	return func(o *options) { o.color = color }
}

// WithTextColor sets a color for the text. Text is unstyled by default.
func WithTextColor(color string) Option {
	return func(o *options) { o.textColor = color }
}

// WithSpinner selects a built-in frame set by name.
func WithSpinner(name string) Option {
	return func(o *options) {
		o.spinner = name
		o.custom = false
	}
}

// WithFrames supplies a custom frame sequence.
func WithFrames(frames ...string) Option {
	return func(o *options) {
		o.frames = frames
		o.custom = true
	}
}

// WithInterval overrides the delay between frames.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithPlacement puts the spinner left or right of the text.
func WithPlacement(p Placement) Option {
	return func(o *options) { o.placement = p }
}

// WithAnimation animates text that doesn't fit the terminal.
func WithAnimation(a Animation) Option {
	return func(o *options) { o.animation = a }
}

// WithIndent prefixes every line the spinner writes.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// WithStream sets the output stream. Defaults to os.Stderr.
func WithStream(w io.Writer) Option {
	return func(o *options) { o.stream = w }
}

// WithEnabled turns the spinner off entirely when false; every method
// becomes a no-op. Useful for non-interactive runs.
func WithEnabled(enabled bool) Option {
	return func(o *options) { o.enabled = enabled }
}

// WithTarget draws into t instead of a target chosen from the environment.
func WithTarget(t RenderTarget) Option {
	return func(o *options) { o.target = t }
}

// WithEnvironment skips environment detection.
func WithEnvironment(env Environment) Option {
	return func(o *options) { o.env = &env }
}

// WithUnicode overrides detection of unicode and styling support. Without
// it, the "line" spinner and ASCII status glyphs are used on hosts that
// can't render the defaults.
func WithUnicode(supported bool) Option {
	return func(o *options) { o.supported = &supported }
}

func withLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

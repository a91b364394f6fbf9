package frames

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/textutil"
)

// Animation controls how text wider than the available space is shown.
type Animation int

const (
	// AnimationNone cuts the text at the terminal edge.
	AnimationNone Animation = iota
	// AnimationBounce slides a window over the text and back.
	AnimationBounce
	// AnimationMarquee scrolls the text in a loop.
	AnimationMarquee
)

func (a Animation) String() string {
	switch a {
	case AnimationBounce:
		return "bounce"
	case AnimationMarquee:
		return "marquee"
	}
	return "none"
}

// ParseAnimation converts a config value to an Animation.
func ParseAnimation(name string) (Animation, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return AnimationNone, nil
	case "bounce":
		return AnimationBounce, nil
	case "marquee":
		return AnimationMarquee, nil
	}
	return AnimationNone, errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a text animation", name),
		"Use bounce, marquee, or leave it empty to cut long text at the edge.")
}

// TextFrames splits text into the frames shown one per tick. Text that fits
// in width, or any text with AnimationNone, yields a single frame.
func TextFrames(text string, width int, anim Animation) []string {
	text = strings.TrimSpace(text)
	length := textutil.Width(text)

	if width <= 0 || length <= width || anim == AnimationNone {
		return []string{text}
	}

	var out []string
	switch anim {
	case AnimationBounce:
		for x := 0; x <= length-width; x++ {
			out = append(out, textutil.Cut(text, x, x+width))
		}
		for i := len(out) - 1; i >= 0; i-- {
			out = append(out, out[i])
		}
	case AnimationMarquee:
		loop := text + " " + textutil.Cut(text, 0, width)
		for x := 0; x <= length; x++ {
			out = append(out, textutil.Cut(loop, x, x+width))
		}
	}
	return out
}

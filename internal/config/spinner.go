package config

import (
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/hostenv"
	"github.com/rileyhilliard/halo/internal/textutil"
	"github.com/rileyhilliard/halo/pkg/halo"
)

// StreamWriter returns the writer named by the stream setting.
func (c *Config) StreamWriter() io.Writer {
	if strings.EqualFold(c.Stream, "stdout") {
		return os.Stdout
	}
	return os.Stderr
}

// SpinnerOptions validates the config and turns it into spinner options,
// loading the frames file if one is set.
func (c *Config) SpinnerOptions() ([]halo.Option, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	var lib frames.Library
	if c.FramesFile != "" {
		var err error
		if lib, err = frames.LoadFile(c.FramesFile); err != nil {
			return nil, err
		}
	}

	spinner, err := spinnerOptions(c.Spinner, lib)
	if err != nil {
		return nil, err
	}
	if c.Interval > 0 {
		spinner = append(spinner, halo.WithInterval(c.Interval))
	}

	// Validate already rejected anything that isn't text or a placement.
	text, _ := textutil.AsText(c.Text)
	placement, _ := halo.ParsePlacement(c.Placement)
	animation, _ := frames.ParseAnimation(c.Animation)

	opts := []halo.Option{
		halo.WithText(text),
		halo.WithColor(c.Color),
		halo.WithTextColor(c.TextColor),
		halo.WithPlacement(placement),
		halo.WithAnimation(animation),
		halo.WithIndent(c.Indent),
		halo.WithStream(c.StreamWriter()),
		halo.WithEnabled(c.Enabled),
	}
	opts = append(opts, spinner...)
	if c.Environment != "" {
		env, _ := hostenv.Parse(c.Environment)
		opts = append(opts, halo.WithEnvironment(env))
	}
	return opts, nil
}

// spinnerOptions picks the frames option for a spinner value. Built-in names
// are left to the spinner so it can fall back on hosts without unicode.
func spinnerOptions(v any, lib frames.Library) ([]halo.Option, error) {
	if name, ok := v.(string); ok {
		name = strings.TrimSpace(name)
		if _, custom := lib[name]; !custom {
			if name != "" {
				if _, err := frames.Lookup(name); err != nil {
					return nil, err
				}
			}
			return []halo.Option{halo.WithSpinner(name)}, nil
		}
	}

	set, err := spinnerSet(v, lib, true)
	if err != nil {
		return nil, err
	}
	return []halo.Option{halo.WithFrames(set.Frames...), halo.WithInterval(set.Interval)}, nil
}

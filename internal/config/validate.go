package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/hostenv"
	"github.com/rileyhilliard/halo/internal/textutil"
	"github.com/rileyhilliard/halo/internal/ui/style"
	"github.com/rileyhilliard/halo/pkg/halo"
)

// Validate checks the config for errors and returns structured error messages.
// Values that aren't text come back as VALIDATION errors, everything else as
// CONFIG errors. The frames file isn't read here; see SpinnerOptions.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but halo only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest halo release.")
	}

	if cfg.Text != nil && !textutil.IsTextLike(cfg.Text) {
		return errors.New(errors.ErrValidation,
			fmt.Sprintf("text should be a string, not %T", cfg.Text),
			"Quote the value in your .halo.yaml, e.g. text: \"42\".")
	}

	if err := validateColor("color", cfg.Color); err != nil {
		return err
	}
	if err := validateColor("text_color", cfg.TextColor); err != nil {
		return err
	}

	if cfg.Interval < 0 {
		return errors.New(errors.ErrConfig,
			"interval can't be negative - that doesn't make sense", "")
	}
	if cfg.Interval > 0 && cfg.Interval < time.Millisecond {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("interval %v is shorter than a millisecond", cfg.Interval),
			"Give it a unit, like interval: 120ms.")
	}

	if _, err := halo.ParsePlacement(cfg.Placement); err != nil {
		return err
	}
	if _, err := frames.ParseAnimation(cfg.Animation); err != nil {
		return err
	}

	if err := validateStream(cfg.Stream); err != nil {
		return err
	}

	if _, err := hostenv.Parse(cfg.Environment); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("environment '%s' isn't valid", cfg.Environment),
			"Use terminal, ipython or jupyter, or leave it out to detect it.")
	}

	// Spinner names can refer to the frames file, which isn't loaded yet.
	if cfg.FramesFile == "" || !isName(cfg.Spinner) {
		if _, err := spinnerSet(cfg.Spinner, nil, true); err != nil {
			return err
		}
	}

	return nil
}

func validateColor(key, name string) error {
	if name == "" {
		return nil
	}
	if _, ok := style.ParseColor(name); !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s '%s' isn't a color halo knows", key, name),
			"Try one of: "+strings.Join(style.ColorNames(), ", "))
	}
	return nil
}

func validateStream(stream string) error {
	switch strings.ToLower(stream) {
	case "", "stderr", "stdout":
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("stream '%s' isn't valid - use 'stderr' or 'stdout'", stream), "")
}

func isName(v any) bool {
	_, ok := v.(string)
	return ok
}

// spinnerSet builds the frame set for a spinner value. An empty name means
// the host's default preset.
func spinnerSet(v any, lib frames.Library, supported bool) (frames.Set, error) {
	if v == nil {
		return frames.Default(supported), nil
	}
	if name, ok := v.(string); ok && strings.TrimSpace(name) == "" {
		return frames.Default(supported), nil
	}
	return frames.Decode(v, lib)
}

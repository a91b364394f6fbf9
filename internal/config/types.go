package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents a .halo.yaml file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Text shown next to the spinner. Kept as the decoded value so a number
	// or list can be reported instead of silently stringified.
	Text any `yaml:"text" mapstructure:"text"`

	// Color of the spinner frame, by name.
	Color string `yaml:"color" mapstructure:"color"`

	// TextColor of the message; empty leaves it unstyled.
	TextColor string `yaml:"text_color" mapstructure:"text_color"`

	// Spinner is a preset name, a spinner from FramesFile, or an inline
	// {frames: [...], interval: ms} map.
	Spinner any `yaml:"spinner" mapstructure:"spinner"`

	// Interval overrides the frame delay ("120ms").
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Placement of the spinner: "left" or "right".
	Placement string `yaml:"placement" mapstructure:"placement"`

	// Animation for text wider than the terminal: "bounce", "marquee" or "".
	Animation string `yaml:"animation" mapstructure:"animation"`

	// Indent is prepended to every line.
	Indent string `yaml:"indent" mapstructure:"indent"`

	// Stream is "stderr" (default) or "stdout".
	Stream string `yaml:"stream" mapstructure:"stream"`

	// Enabled false turns the spinner off.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Environment forces "terminal", "ipython" or "jupyter" instead of detecting it.
	Environment string `yaml:"environment" mapstructure:"environment"`

	// FramesFile points at a YAML file of named custom spinners. Relative
	// paths are resolved against the config file's directory.
	FramesFile string `yaml:"frames_file" mapstructure:"frames_file"`

	// path is the file this config was loaded from, empty for defaults.
	path string
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Color:   "cyan",
		Stream:  "stderr",
		Enabled: true,
	}
}

package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rileyhilliard/halo/internal/config"
	"github.com/rileyhilliard/halo/internal/logger"
	"github.com/rileyhilliard/halo/pkg/halo"
	"github.com/spf13/cobra"
)

// interruptedExitCode is what shells report for a process ended by SIGINT.
const interruptedExitCode = 130

// loadConfig finds and loads the config, then applies any flags the user set.
func loadConfig(cmd *cobra.Command, g *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(g.config)
	if err != nil {
		return nil, err
	}
	if cfg.Path() != "" {
		logger.Default().Debug("loaded config from %s", cfg.Path())
	}

	flags := cmd.Flags()
	if flags.Changed("text") {
		cfg.Text = g.text
	}
	if flags.Changed("spinner") {
		cfg.Spinner = g.spinner
	}
	if flags.Changed("color") {
		cfg.Color = g.color
	}
	if flags.Changed("text-color") {
		cfg.TextColor = g.textColor
	}
	if flags.Changed("interval") {
		cfg.Interval = g.interval
	}
	if flags.Changed("placement") {
		cfg.Placement = g.placement
	}
	if flags.Changed("animation") {
		cfg.Animation = g.animation
	}
	if flags.Changed("indent") {
		cfg.Indent = g.indent
	}
	return cfg, nil
}

// newSpinner builds a spinner from config and flags. fallbackText is used
// when neither sets any text.
func newSpinner(cmd *cobra.Command, g *globalFlags, fallbackText string) (*halo.Spinner, error) {
	cfg, err := loadConfig(cmd, g)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.SpinnerOptions()
	if err != nil {
		return nil, err
	}

	// Route through cobra's streams so output can be captured.
	stream := cmd.ErrOrStderr()
	if strings.EqualFold(cfg.Stream, "stdout") {
		stream = cmd.OutOrStdout()
	}
	opts = append(opts, halo.WithStream(stream))

	s, err := halo.New(opts...)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Text()) == "" {
		s.SetText(fallbackText)
	}
	return s, nil
}

// withSignals returns a context cancelled on SIGINT or SIGTERM. The cursor
// is restored as soon as a signal arrives, before anything else runs.
func withSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logger.Default().Debug("received %s, stopping", sig)
			halo.RestoreCursor()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}

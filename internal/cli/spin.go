package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/pkg/halo"
	"github.com/spf13/cobra"
)

// statusNone stops the spinner without leaving a line behind.
const statusNone = "none"

func newSpinCmd(g *globalFlags) *cobra.Command {
	var (
		duration  time.Duration
		status    string
		finalText string
	)

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Show a spinner for a while, then a status line",
		Long: `Animate a spinner for a fixed time, then persist a final line.

Useful in shell scripts to mark a step, or to try out spinner settings.

Examples:
  halo spin --for 2s --text "Warming up"
  halo spin --for 1s --status fail --final-text "Couldn't reach the server"
  halo spin --spinner moon --status none`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finish, err := finisher(status)
			if err != nil {
				return err
			}

			s, err := newSpinner(cmd, g, "Working")
			if err != nil {
				return err
			}

			ctx, stop := withSignals(cmd.Context())
			defer stop()

			if err := s.Start(); err != nil {
				return err
			}

			timer := time.NewTimer(duration)
			defer timer.Stop()

			select {
			case <-timer.C:
			case <-ctx.Done():
				_ = s.Stop()
				return errors.NewExitError(interruptedExitCode)
			}

			return finish(s, finalText)
		},
	}

	cmd.Flags().DurationVar(&duration, "for", 2*time.Second, "how long to spin")
	cmd.Flags().StringVar(&status, "status", "success", "final status: success, fail, warn, info or none")
	cmd.Flags().StringVar(&finalText, "final-text", "", "text for the final line (default: the spinner text)")

	return cmd
}

// finisher maps a --status value to the spinner method that ends the spin.
func finisher(status string) (func(s *halo.Spinner, text string) error, error) {
	name := strings.ToLower(strings.TrimSpace(status))
	if name == statusNone {
		return func(s *halo.Spinner, _ string) error { return s.Stop() }, nil
	}

	st, ok := frames.ParseStatus(name)
	if !ok {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a status halo knows", status),
			"Use success, fail, warn, info or none.")
	}

	switch st {
	case frames.StatusFail:
		return (*halo.Spinner).Fail, nil
	case frames.StatusWarning:
		return (*halo.Spinner).Warn, nil
	case frames.StatusInfo:
		return (*halo.Spinner).Info, nil
	}
	return (*halo.Spinner).Succeed, nil
}

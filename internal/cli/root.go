package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/ui/style"
	"github.com/rileyhilliard/halo/pkg/halo"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	config    string
	noColor   bool
	text      string
	spinner   string
	color     string
	textColor string
	interval  time.Duration
	placement string
	animation string
	indent    string
}

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "halo",
		Short: "Terminal spinners for long-running commands",
		Long: `halo draws an animated spinner next to a message while something runs,
then replaces it with a success, failure, warning or info line.

Settings come from .halo.yaml (current directory, then ~/.config/halo/config.yaml),
HALO_* environment variables, and the flags below, in increasing priority.

Examples:
  halo run -- make build
  halo spin --for 3s --text "Thinking" --status info
  halo list
  halo preview moon`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor || os.Getenv("NO_COLOR") != "" {
				style.DisableColors()
			}
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&g.config, "config", "", "config file (default is ./.halo.yaml, then ~/.config/halo/config.yaml)")
	f.BoolVar(&g.noColor, "no-color", false, "disable colored output")
	f.StringVar(&g.text, "text", "", "text shown next to the spinner")
	f.StringVar(&g.spinner, "spinner", "", "spinner name (see 'halo list')")
	f.StringVar(&g.color, "color", "", "spinner color (red, green, yellow, blue, magenta, cyan, white, gray)")
	f.StringVar(&g.textColor, "text-color", "", "text color")
	f.DurationVar(&g.interval, "interval", 0, "delay between frames (e.g., 80ms)")
	f.StringVar(&g.placement, "placement", "", "spinner placement: left or right")
	f.StringVar(&g.animation, "animation", "", "animation for long text: bounce or marquee")
	f.StringVar(&g.indent, "indent", "", "prefix for every line")

	cmd.AddCommand(
		newRunCmd(g),
		newSpinCmd(g),
		newListCmd(g),
		newPreviewCmd(g),
		newVersionCmd(),
	)
	cmd.AddCommand(newCompletionCmd(cmd))

	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return execute(context.Background(), newRootCmd())
}

func execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	halo.RestoreCursor()
	return exitCode(cmd.ErrOrStderr(), err)
}

// exitCode reports err on w and maps it to a process exit code. An
// ExitError passes its code through silently.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	msg := err.Error()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(w, msg)
	return 1
}

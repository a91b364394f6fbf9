package cli

import (
	"bytes"
	"fmt"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/exec"
	"github.com/rileyhilliard/halo/internal/ui"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Command    string
	WorkDir    string // Directory to run in (empty means current)
	ShowOutput bool   // Print captured output even on success
}

func newRunCmd(g *globalFlags) *cobra.Command {
	var opts RunOptions

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command under a spinner",
		Long: `Run a shell command while a spinner shows it is working.

The command's output is captured. When it finishes, the spinner is replaced by
a success or failure line with the elapsed time. Output is printed afterwards if
the command failed, or always with --show-output. halo exits with the
command's exit code.

Examples:
  halo run -- make build
  halo run --text "Running tests" -- go test ./...
  halo run --show-output -- ls -la`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Command = exec.CommandLine(args)
			return runCommand(cmd, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ShowOutput, "show-output", false, "print the command's output even when it succeeds")
	cmd.Flags().StringVar(&opts.WorkDir, "dir", "", "directory to run the command in")

	return cmd
}

func runCommand(cmd *cobra.Command, g *globalFlags, opts RunOptions) error {
	s, err := newSpinner(cmd, g, opts.Command)
	if err != nil {
		return err
	}

	ctx, stop := withSignals(cmd.Context())
	defer stop()

	if err := s.Start(); err != nil {
		return err
	}

	var stdout, stderr bytes.Buffer
	exitCode, runErr := exec.ExecuteLocal(ctx, opts.Command, opts.WorkDir, &stdout, &stderr)
	label := fmt.Sprintf("%s (%s)", s.Text(), ui.FormatDuration(s.Elapsed()))

	switch {
	case ctx.Err() != nil:
		_ = s.Stop()
		return errors.NewExitError(interruptedExitCode)
	case runErr != nil:
		_ = s.Fail(label)
		return runErr
	case exitCode == 0:
		err = s.Succeed(label)
	default:
		err = s.Fail(fmt.Sprintf("%s exited with code %d", label, exitCode))
	}
	if err != nil {
		return err
	}

	if opts.ShowOutput || exitCode != 0 {
		ui.NewReport(cmd.OutOrStdout()).Section(opts.Command, stdout.Bytes(), stderr.Bytes())
	}

	if exitCode != 0 {
		return errors.NewExitError(exitCode)
	}
	return nil
}

package exec

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
)

const waitDelay = 2 * time.Second

// Shell returns the shell used to interpret commands: $SHELL, or /bin/sh.
func Shell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// CommandLine joins command arguments into one shell command line.
func CommandLine(args []string) string {
	return strings.Join(args, " ")
}

// ExecuteLocal runs a command through the shell, streaming output to the
// provided writers. A non-zero exit is reported through exitCode with a nil
// error; err is only set when the command couldn't be run at all or ctx was
// cancelled.
func ExecuteLocal(ctx context.Context, cmd string, workDir string, stdout, stderr io.Writer) (exitCode int, err error) {
	// Use shell to interpret the command (handles pipes, redirects, etc.)
	command := exec.CommandContext(ctx, Shell(), "-c", cmd)

	if workDir != "" {
		command.Dir = workDir
	}

	command.Stdout = stdout
	command.Stderr = stderr
	// Children of the shell can hold the output pipes open after a cancel.
	command.WaitDelay = waitDelay

	runErr := command.Run()
	if runErr == nil {
		return 0, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, errors.WrapWithCode(ctxErr, errors.ErrExec,
			"The command was interrupted",
			"")
	}

	// Command ran but returned non-zero
	var exitErr *exec.ExitError
	if stderrors.As(runErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return -1, errors.WrapWithCode(runErr, errors.ErrExec,
		"Couldn't run the command",
		"Make sure the command exists and is executable.")
}

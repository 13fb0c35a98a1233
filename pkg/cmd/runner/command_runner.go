// Package runner executes kubecd cobra commands in-process and captures their output.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// CommandResult holds everything a command wrote, including output produced before a failure.
type CommandResult struct {
	Stdout string
	Stderr string
}

// CommandRunner executes a cobra command with arguments.
type CommandRunner interface {
	Run(ctx context.Context, cmd *cobra.Command, args ...string) (CommandResult, error)
}

// CobraCommandRunner captures command output and optionally tees it to extra writers.
type CobraCommandRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewCobraCommandRunner creates a runner. Nil writers discard the tee and only capture.
func NewCobraCommandRunner(stdout, stderr io.Writer) *CobraCommandRunner {
	if stdout == nil {
		stdout = io.Discard
	}

	if stderr == nil {
		stderr = io.Discard
	}

	return &CobraCommandRunner{stdout: stdout, stderr: stderr}
}

// Run executes cmd with args. Usage and error printing are silenced; the error is returned instead.
func (r *CobraCommandRunner) Run(
	ctx context.Context,
	cmd *cobra.Command,
	args ...string,
) (CommandResult, error) {
	var outBuf, errBuf bytes.Buffer

	cmd.SetOut(io.MultiWriter(&outBuf, r.stdout))
	cmd.SetErr(io.MultiWriter(&errBuf, r.stderr))
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)

	result := CommandResult{Stdout: outBuf.String(), Stderr: errBuf.String()}
	if err != nil {
		return result, fmt.Errorf("command execution failed: %w", err)
	}

	return result, nil
}

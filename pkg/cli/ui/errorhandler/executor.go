// Package errorhandler runs the root cobra command and turns its failures into
// a single printable error with a process exit code.
package errorhandler

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
	"github.com/spf13/cobra"
)

// Exit codes returned by ExitCode.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitConfig = 2
)

// Executor runs a cobra command, capturing what cobra writes to stderr so it can be
// merged into the returned error instead of being printed twice. On success the
// captured output is passed through unchanged.
type Executor struct {
	normalizer Normalizer
}

// NewExecutor constructs an Executor using DefaultNormalizer.
func NewExecutor() *Executor {
	return &Executor{normalizer: DefaultNormalizer{}}
}

// Execute runs cmd with ctx. It returns nil on success and a *CommandError otherwise.
func (e *Executor) Execute(ctx context.Context, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		// Notifications written during a successful run still belong on stderr.
		_, _ = errBuf.WriteTo(originalErrWriter)

		return nil
	}

	return &CommandError{
		message: e.normalizer.Normalize(errBuf.String()),
		cause:   err,
	}
}

// CommandError is a command failure together with the normalized stderr cobra produced.
type CommandError struct {
	message string
	cause   error
}

func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message == "":
		return e.cause.Error()
	case strings.Contains(e.message, e.cause.Error()):
		return e.message
	default:
		return e.message + ": " + e.cause.Error()
	}
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// ExitCode maps err to a process exit code. Errors caused by the contents of the
// environments file (provider selection, provider fields, references) exit with
// ExitConfig; any other failure exits with ExitError.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, provider.ErrUnsupportedProvider),
		errors.Is(err, provider.ErrProviderConfig),
		errors.Is(err, v1alpha1.ErrUnknownCluster),
		errors.Is(err, v1alpha1.ErrUnknownEnvironment),
		errors.Is(err, v1alpha1.ErrInvalidName),
		errors.Is(err, v1alpha1.ErrNameTooLong),
		errors.Is(err, v1alpha1.ErrDuplicateName),
		errors.Is(err, v1alpha1.ErrMissingField),
		errors.Is(err, v1alpha1.ErrInvalidTypeMeta):
		return ExitConfig
	default:
		return ExitError
	}
}

// Normalizer cleans up raw cobra stderr output.
type Normalizer interface {
	Normalize(raw string) string
}

// DefaultNormalizer trims whitespace and drops cobra's leading "Error: " prefix while
// keeping any usage hint lines that follow.
type DefaultNormalizer struct{}

// Normalize implements Normalizer.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}

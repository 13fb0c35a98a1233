// Package main is the entry point for kubecd.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/devantler-tech/kubecd/internal/buildmeta"
	"github.com/devantler-tech/kubecd/pkg/cli/cmd"
	"github.com/devantler-tech/kubecd/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/kubecd/pkg/utils/notify"
)

func main() {
	exitCode := runSafely(os.Args[1:], runWithArgs, os.Stderr)

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			notify.WriteMessage(notify.Message{
				Type:    notify.ErrorType,
				Content: fmt.Sprintf("panic recovered: %v\n%s", r, debug.Stack()),
				Writer:  errWriter,
			})

			exitCode = errorhandler.ExitError
		}
	}()

	return runner(args)
}

func runWithArgs(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)

	err := cmd.Execute(ctx, rootCmd)
	if err != nil {
		notify.Errorf(rootCmd.ErrOrStderr(), "%v", err)

		return errorhandler.ExitCode(err)
	}

	return errorhandler.ExitOK
}

package cmd

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/devantler-tech/kubecd/pkg/cli/cmd/cluster"
	"github.com/devantler-tech/kubecd/pkg/cli/cmd/environment"
	"github.com/devantler-tech/kubecd/pkg/cli/helpers"
	"github.com/devantler-tech/kubecd/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/kubecd/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command with version info and subcommands. Extra
// modules are applied on top of the default runtime.
func NewRootCmd(version, commit, date string, modules ...di.Module) *cobra.Command {
	runtimeContainer := di.NewRuntime(modules...)

	cmd := &cobra.Command{
		Use:   "kubecd",
		Short: "kubecd prepares kube contexts for the clusters your environments run on",
		Long: heredoc.Doc(`
			kubecd reads an environments file (kubecd.yaml) describing clusters and the
			environments deployed to them, and prints the commands that fetch cluster
			credentials and create one kube context per environment.

			Generated commands are printed, never executed.
		`),
		RunE:         handleRootRunE,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			helpers.ConfigureLogging(cmd.ErrOrStderr(), helpers.IsVerbose(cmd))
		},
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().StringP(
		helpers.ConfigFlagName,
		"c",
		"",
		"Path to the environments file (default: kubecd.yaml in . or $HOME/.kubecd)",
	)
	cmd.PersistentFlags().String(
		helpers.KubeconfigFlagName,
		"",
		"Kubeconfig used to resolve existingContext clusters (default: $KUBECONFIG or ~/.kube/config)",
	)
	cmd.PersistentFlags().BoolP(
		helpers.VerboseFlagName,
		"v",
		false,
		"Enable debug logging",
	)

	cmd.AddCommand(NewInitCmd(runtimeContainer))
	cmd.AddCommand(cluster.NewClusterCmd(runtimeContainer))
	cmd.AddCommand(environment.NewEnvironmentCmd(runtimeContainer))
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	err := errorhandler.NewExecutor().Execute(ctx, cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}

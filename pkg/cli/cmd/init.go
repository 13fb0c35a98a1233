package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc"
	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/cli/helpers"
	"github.com/devantler-tech/kubecd/pkg/cli/output"
	"github.com/devantler-tech/kubecd/pkg/cli/parallel"
	"github.com/devantler-tech/kubecd/pkg/di"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
	"github.com/devantler-tech/kubecd/pkg/svc/providerresolver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrNoEnvironmentsSelected is returned when init is called without environments or --all.
var ErrNoEnvironmentsSelected = errors.New("no environments selected: pass environment names or --all")

// ErrUseContextNeedsOneEnvironment is returned when --use-context selects more than one environment.
var ErrUseContextNeedsOneEnvironment = errors.New("--use-context requires exactly one environment")

// ErrUseContextWithClusterOnly is returned when --use-context is combined with --cluster-only,
// which skips creating the context it would switch to.
var ErrUseContextWithClusterOnly = errors.New("--use-context cannot be combined with --cluster-only")

// InitOptions holds the flags of the init command.
type InitOptions struct {
	All         bool
	ClusterOnly bool
	UseContext  bool
	Output      output.Format
}

// NewInitCmd creates the init command.
func NewInitCmd(runtimeContainer *di.Runtime) *cobra.Command {
	opts := InitOptions{Output: output.FormatShell}

	cmd := &cobra.Command{
		Use:   "init [ENVIRONMENT...]",
		Short: "Print the commands that initialise environment kube contexts",
		Long: heredoc.Doc(`
			Print, for each selected environment, the command that fetches credentials
			for its cluster followed by the kubectl command that creates the
			"env:<environment>" kube context.

			Nothing is executed. Pipe the shell output to sh to apply it.
		`),
		Example: heredoc.Doc(`
			# Initialise the production environment
			kubecd init production | sh

			# Print credential commands for every environment as JSON
			kubecd init --all --cluster-only -o json
		`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runtimeContainer.Invoke(func(injector di.Injector) error {
				return HandleInitRunE(cmd, injector, args, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Initialise every environment in the config")
	cmd.Flags().BoolVar(&opts.ClusterOnly, "cluster-only", false,
		"Only print cluster credential commands, skip kube context creation")
	cmd.Flags().BoolVar(&opts.UseContext, "use-context", false,
		"Also switch the current kube context to the selected environment")
	cmd.Flags().VarP(&opts.Output, "output", "o", "Output format (shell, json, yaml)")

	return cmd
}

// HandleInitRunE loads the config, generates commands for the selected environments
// concurrently and renders them in config order.
func HandleInitRunE(
	cmd *cobra.Command,
	injector di.Injector,
	names []string,
	opts InitOptions,
) error {
	if opts.UseContext && opts.ClusterOnly {
		return ErrUseContextWithClusterOnly
	}

	resolver, err := helpers.ProviderResolver(cmd, injector)
	if err != nil {
		return err
	}

	cfg, err := helpers.LoadConfig(cmd, injector, false)
	if err != nil {
		return err
	}

	envs, err := SelectEnvironments(cfg, names, opts.All)
	if err != nil {
		return err
	}

	if opts.UseContext && len(envs) != 1 {
		return fmt.Errorf("%w (got %d)", ErrUseContextNeedsOneEnvironment, len(envs))
	}

	sets, err := parallel.Map(cmd.Context(), parallel.NewExecutor(0), envs,
		func(_ context.Context, env *v1alpha1.Environment) (output.CommandSet, error) {
			commands, err := initCommands(resolver, cfg, env, opts.ClusterOnly)
			if err != nil {
				return output.CommandSet{}, err
			}

			logrus.WithFields(logrus.Fields{
				"environment": env.Name,
				"cluster":     env.ClusterName,
				"commands":    len(commands),
			}).Debug("generated init commands")

			return output.CommandSet{Environment: env.Name, Commands: commands}, nil
		})
	if err != nil {
		return fmt.Errorf("generate init commands: %w", err)
	}

	if opts.UseContext {
		sets[0].Commands = append(sets[0].Commands, provider.UseContextCommand(envs[0].Name))
	}

	return output.Render(cmd.OutOrStdout(), opts.Output, sets)
}

func initCommands(
	resolver *providerresolver.Resolver,
	cfg *v1alpha1.Config,
	env *v1alpha1.Environment,
	clusterOnly bool,
) ([][]string, error) {
	if !clusterOnly {
		return resolver.EnvironmentInitCommands(cfg, env)
	}

	cluster, err := cfg.ClusterForEnvironment(env)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", env.Name, err)
	}

	commands, err := resolver.ClusterInitCommands(cluster)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", env.Name, err)
	}

	return commands, nil
}

// SelectEnvironments returns the named environments in config order, or all of
// them when all is set. Unknown names are reported together.
func SelectEnvironments(
	cfg *v1alpha1.Config,
	names []string,
	all bool,
) ([]*v1alpha1.Environment, error) {
	if !all && len(names) == 0 {
		return nil, ErrNoEnvironmentsSelected
	}

	var unknown []error

	for _, name := range names {
		if cfg.Environment(name) == nil {
			unknown = append(unknown, fmt.Errorf("%w: %q", v1alpha1.ErrUnknownEnvironment, name))
		}
	}

	if len(unknown) > 0 {
		return nil, errors.Join(unknown...)
	}

	selected := make([]*v1alpha1.Environment, 0, len(cfg.Environments))

	for i := range cfg.Environments {
		env := &cfg.Environments[i]
		if all || slices.Contains(names, env.Name) {
			selected = append(selected, env)
		}
	}

	return selected, nil
}

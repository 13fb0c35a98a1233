package environment

import (
	"io"

	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/cli/helpers"
	"github.com/devantler-tech/kubecd/pkg/di"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
	"github.com/spf13/cobra"
)

// NewListCmd creates the environment list command.
func NewListCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List environments with their cluster, namespace and kube context",
		SilenceUsage: true,
		RunE: di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, injector di.Injector) error {
			cfg, err := helpers.LoadConfig(cmd, injector, true)
			if err != nil {
				return err
			}

			return WriteEnvironments(cmd.OutOrStdout(), cfg.Environments)
		}),
	}
}

// WriteEnvironments writes one row per environment.
func WriteEnvironments(writer io.Writer, envs []v1alpha1.Environment) error {
	rows := make([][]string, 0, len(envs))

	for i := range envs {
		env := &envs[i]
		rows = append(rows, []string{
			env.Name,
			env.ClusterName,
			provider.EnvironmentNamespace(env),
			v1alpha1.KubeContextName(env.Name),
		})
	}

	return helpers.WriteTable(writer, []string{"NAME", "CLUSTER", "NAMESPACE", "CONTEXT"}, rows)
}

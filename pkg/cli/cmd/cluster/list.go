package cluster

import (
	"io"
	"strings"

	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/cli/helpers"
	"github.com/devantler-tech/kubecd/pkg/di"
	"github.com/devantler-tech/kubecd/pkg/svc/providerresolver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// unresolved marks a column the provider could not determine.
const unresolved = "-"

// NewListCmd creates the cluster list command.
func NewListCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List clusters with their provider and kubeconfig entries",
		SilenceUsage: true,
		RunE: di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, injector di.Injector) error {
			resolver, err := helpers.ProviderResolver(cmd, injector)
			if err != nil {
				return err
			}

			cfg, err := helpers.LoadConfig(cmd, injector, true)
			if err != nil {
				return err
			}

			return WriteClusters(cmd.OutOrStdout(), resolver, cfg.Clusters)
		}),
	}
}

// WriteClusters writes one row per cluster. Clusters whose provider cannot be
// resolved are still listed with "-" in the columns that depend on it.
func WriteClusters(writer io.Writer, resolver *providerresolver.Resolver, clusters []v1alpha1.Cluster) error {
	rows := make([][]string, 0, len(clusters))

	for i := range clusters {
		cluster := &clusters[i]
		clusterName, userName := kubeconfigEntries(resolver, cluster)

		rows = append(rows, []string{cluster.Name, providerColumn(cluster.Provider), clusterName, userName})
	}

	return helpers.WriteTable(writer, []string{"NAME", "PROVIDER", "KUBE CLUSTER", "KUBE USER"}, rows)
}

func providerColumn(p v1alpha1.Provider) string {
	kinds := p.Kinds()
	if len(kinds) == 0 {
		return unresolved
	}

	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}

	return strings.Join(names, ",")
}

func kubeconfigEntries(resolver *providerresolver.Resolver, cluster *v1alpha1.Cluster) (string, string) {
	clusterProvider, err := resolver.GetClusterProvider(cluster)
	if err != nil {
		logrus.WithError(err).WithField("cluster", cluster.Name).Debug("provider not resolved")

		return unresolved, unresolved
	}

	clusterName, err := clusterProvider.ClusterName()
	if err != nil {
		logrus.WithError(err).WithField("cluster", cluster.Name).Debug("kubeconfig cluster name not resolved")

		clusterName = unresolved
	}

	userName, err := clusterProvider.UserName()
	if err != nil {
		logrus.WithError(err).WithField("cluster", cluster.Name).Debug("kubeconfig user name not resolved")

		userName = unresolved
	}

	return clusterName, userName
}

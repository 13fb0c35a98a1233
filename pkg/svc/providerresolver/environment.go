package providerresolver

import (
	"fmt"

	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
)

// ClusterInitCommands resolves the cluster's provider and returns its init commands.
func (r *Resolver) ClusterInitCommands(cluster *v1alpha1.Cluster) ([][]string, error) {
	clusterProvider, err := r.GetClusterProvider(cluster)
	if err != nil {
		return nil, err
	}

	commands, err := clusterProvider.ClusterInitCommands()
	if err != nil {
		return nil, fmt.Errorf("generate cluster init commands: %w", err)
	}

	return commands, nil
}

// EnvironmentInitCommands returns every command needed to make the
// environment's kube context usable: the cluster's credential commands
// followed by the kubectl set-context command.
func (r *Resolver) EnvironmentInitCommands(
	cfg *v1alpha1.Config,
	env *v1alpha1.Environment,
) ([][]string, error) {
	cluster, err := cfg.ClusterForEnvironment(env)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", env.Name, err)
	}

	clusterProvider, err := r.GetClusterProvider(cluster)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", env.Name, err)
	}

	commands, err := clusterProvider.ClusterInitCommands()
	if err != nil {
		return nil, fmt.Errorf("environment %q: generate cluster init commands: %w", env.Name, err)
	}

	contextCommands, err := provider.ContextInitCommands(clusterProvider, env)
	if err != nil {
		return nil, fmt.Errorf("environment %q: generate context init commands: %w", env.Name, err)
	}

	return append(commands, contextCommands...), nil
}

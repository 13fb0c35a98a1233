package provider

import (
	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	corev1 "k8s.io/api/core/v1"
)

// DefaultNamespace is used when an environment does not set a kube namespace.
const DefaultNamespace = corev1.NamespaceDefault

// ClusterProvider builds the commands and names needed to access a cluster.
// Implementations are immutable and safe for concurrent use.
type ClusterProvider interface {
	// ClusterInitCommands returns the commands, in execution order, that fetch
	// credentials for the cluster. Providers that need no setup return an empty slice.
	ClusterInitCommands() ([][]string, error)

	// ClusterName returns the name of the cluster entry in the kubeconfig.
	ClusterName() (string, error)

	// UserName returns the name of the user entry in the kubeconfig.
	UserName() (string, error)

	// Namespace returns the namespace the environment's kube context should use.
	Namespace(env *v1alpha1.Environment) string
}

// EnvironmentNamespace returns env.KubeNamespace, or DefaultNamespace when unset.
// Providers use it to implement ClusterProvider.Namespace.
func EnvironmentNamespace(env *v1alpha1.Environment) string {
	if env == nil || env.KubeNamespace == "" {
		return DefaultNamespace
	}

	return env.KubeNamespace
}

// ContextInitCommands returns the command that creates the environment's kube
// context, pointing at the cluster and user entries of the provider.
func ContextInitCommands(clusterProvider ClusterProvider, env *v1alpha1.Environment) ([][]string, error) {
	clusterName, err := clusterProvider.ClusterName()
	if err != nil {
		return nil, err
	}

	userName, err := clusterProvider.UserName()
	if err != nil {
		return nil, err
	}

	return [][]string{{
		"kubectl", "config", "set-context", v1alpha1.KubeContextName(env.Name),
		"--cluster", clusterName,
		"--user", userName,
		"--namespace", clusterProvider.Namespace(env),
	}}, nil
}

// UseContextCommand returns the command that switches the current kube context
// to the environment's context.
func UseContextCommand(envName string) []string {
	return []string{"kubectl", "config", "use-context", v1alpha1.KubeContextName(envName)}
}

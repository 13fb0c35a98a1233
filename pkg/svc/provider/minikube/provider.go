// Package minikube provides the cluster provider for local minikube clusters.
// minikube writes its own kubeconfig entries, so no init commands are needed.
package minikube

import (
	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
)

// EntryName is the kubeconfig cluster and user entry minikube creates.
const EntryName = "minikube"

// Provider is the minikube cluster provider.
type Provider struct{}

var _ provider.ClusterProvider = Provider{}

// NewProvider returns a minikube provider. The cluster carries no minikube settings.
func NewProvider(_ *v1alpha1.Cluster) Provider {
	return Provider{}
}

// ClusterInitCommands returns no commands.
func (Provider) ClusterInitCommands() ([][]string, error) {
	return [][]string{}, nil
}

// ClusterName returns "minikube".
func (Provider) ClusterName() (string, error) {
	return EntryName, nil
}

// UserName returns "minikube".
func (Provider) UserName() (string, error) {
	return EntryName, nil
}

// Namespace returns the environment namespace.
func (Provider) Namespace(env *v1alpha1.Environment) string {
	return provider.EnvironmentNamespace(env)
}

// Package dockerdesktop provides the cluster provider for the Kubernetes
// cluster bundled with Docker Desktop.
package dockerdesktop

import (
	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
)

const (
	// ClusterEntryName is the kubeconfig cluster entry Docker Desktop creates.
	ClusterEntryName = "docker-for-desktop-cluster"
	// UserEntryName is the kubeconfig user entry Docker Desktop creates.
	UserEntryName = "docker-for-desktop"
)

// Provider is the Docker Desktop cluster provider.
type Provider struct{}

var _ provider.ClusterProvider = Provider{}

// NewProvider returns a Docker Desktop provider.
func NewProvider(_ *v1alpha1.Cluster) Provider {
	return Provider{}
}

// ClusterInitCommands returns no commands; Docker Desktop manages its kubeconfig entries.
func (Provider) ClusterInitCommands() ([][]string, error) {
	return [][]string{}, nil
}

// ClusterName returns ClusterEntryName.
func (Provider) ClusterName() (string, error) {
	return ClusterEntryName, nil
}

// UserName returns UserEntryName.
func (Provider) UserName() (string, error) {
	return UserEntryName, nil
}

// Namespace returns the environment namespace.
func (Provider) Namespace(env *v1alpha1.Environment) string {
	return provider.EnvironmentNamespace(env)
}

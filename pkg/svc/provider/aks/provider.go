// Package aks provides the Azure Kubernetes Service cluster provider.
package aks

import (
	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
)

// Provider generates az commands for an AKS cluster.
type Provider struct {
	cluster string
	config  v1alpha1.AksProvider
}

var _ provider.ClusterProvider = (*Provider)(nil)

// NewProvider binds an AKS provider to a cluster.
func NewProvider(cluster *v1alpha1.Cluster) *Provider {
	return &Provider{
		cluster: cluster.Name,
		config:  *cluster.Provider.AKS,
	}
}

// ClusterInitCommands returns the az aks get-credentials command for the cluster.
func (p *Provider) ClusterInitCommands() ([][]string, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	return [][]string{{
		"az", "aks", "get-credentials",
		"--resource-group", p.config.ResourceGroup,
		"--name", p.config.ClusterName,
	}}, nil
}

// ClusterName returns the AKS cluster name, which az uses as the kubeconfig cluster entry.
func (p *Provider) ClusterName() (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}

	return p.config.ClusterName, nil
}

// UserName returns clusterUser_<resourceGroup>_<cluster>.
func (p *Provider) UserName() (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}

	return "clusterUser_" + p.config.ResourceGroup + "_" + p.config.ClusterName, nil
}

// Namespace returns the environment namespace.
func (p *Provider) Namespace(env *v1alpha1.Environment) string {
	return provider.EnvironmentNamespace(env)
}

func (p *Provider) validate() error {
	if p.config.ResourceGroup == "" {
		return provider.NewProviderConfigError(p.cluster, v1alpha1.ProviderKindAKS, "resourceGroup must be set")
	}

	if p.config.ClusterName == "" {
		return provider.NewProviderConfigError(p.cluster, v1alpha1.ProviderKindAKS, "clusterName must be set")
	}

	return nil
}

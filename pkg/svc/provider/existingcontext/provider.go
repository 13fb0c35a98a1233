// Package existingcontext provides a cluster provider that reuses a context
// already present in the user's kubeconfig. Cluster and user entry names are
// read from that context.
package existingcontext

import (
	"fmt"

	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// KubeconfigLoader returns the merged kubeconfig to look contexts up in.
type KubeconfigLoader func() (*clientcmdapi.Config, error)

// DefaultKubeconfigLoader loads the kubeconfig the way kubectl does,
// honouring $KUBECONFIG and falling back to ~/.kube/config.
func DefaultKubeconfigLoader() (*clientcmdapi.Config, error) {
	config, err := clientcmd.NewDefaultClientConfigLoadingRules().Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	return config, nil
}

// FileKubeconfigLoader returns a loader that reads a single kubeconfig file.
func FileKubeconfigLoader(path string) KubeconfigLoader {
	return func() (*clientcmdapi.Config, error) {
		config, err := clientcmd.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load kubeconfig %q: %w", path, err)
		}

		return config, nil
	}
}

// Option configures a Provider.
type Option func(*Provider)

// WithKubeconfigLoader overrides where the kubeconfig is read from.
func WithKubeconfigLoader(loader KubeconfigLoader) Option {
	return func(p *Provider) {
		p.load = loader
	}
}

// Provider resolves cluster and user names from an existing kube context.
type Provider struct {
	cluster     string
	contextName string
	load        KubeconfigLoader
}

var _ provider.ClusterProvider = (*Provider)(nil)

// NewProvider binds an existing-context provider to a cluster.
func NewProvider(cluster *v1alpha1.Cluster, opts ...Option) *Provider {
	prov := &Provider{
		cluster:     cluster.Name,
		contextName: cluster.Provider.ExistingContext.ContextName,
		load:        DefaultKubeconfigLoader,
	}

	for _, opt := range opts {
		opt(prov)
	}

	return prov
}

// ClusterInitCommands returns no commands; the context is expected to exist already.
func (p *Provider) ClusterInitCommands() ([][]string, error) {
	if p.contextName == "" {
		return nil, p.missingContextName()
	}

	return [][]string{}, nil
}

// ClusterName returns the cluster entry referenced by the context.
func (p *Provider) ClusterName() (string, error) {
	kubeContext, err := p.lookupContext()
	if err != nil {
		return "", err
	}

	return kubeContext.Cluster, nil
}

// UserName returns the user entry referenced by the context.
func (p *Provider) UserName() (string, error) {
	kubeContext, err := p.lookupContext()
	if err != nil {
		return "", err
	}

	return kubeContext.AuthInfo, nil
}

// Namespace returns the environment namespace.
func (p *Provider) Namespace(env *v1alpha1.Environment) string {
	return provider.EnvironmentNamespace(env)
}

func (p *Provider) lookupContext() (*clientcmdapi.Context, error) {
	if p.contextName == "" {
		return nil, p.missingContextName()
	}

	config, err := p.load()
	if err != nil {
		return nil, fmt.Errorf("cluster %q: %w", p.cluster, err)
	}

	kubeContext, ok := config.Contexts[p.contextName]
	if !ok || kubeContext == nil {
		return nil, provider.NewProviderConfigError(
			p.cluster, v1alpha1.ProviderKindExistingContext,
			"context %q not found in kubeconfig", p.contextName,
		)
	}

	return kubeContext, nil
}

func (p *Provider) missingContextName() error {
	return provider.NewProviderConfigError(
		p.cluster, v1alpha1.ProviderKindExistingContext, "contextName must be set",
	)
}

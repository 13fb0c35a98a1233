package providerresolver

import (
	"fmt"
	"maps"
	"slices"

	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
	"github.com/devantler-tech/kubecd/pkg/svc/provider/aks"
	"github.com/devantler-tech/kubecd/pkg/svc/provider/dockerdesktop"
	"github.com/devantler-tech/kubecd/pkg/svc/provider/existingcontext"
	"github.com/devantler-tech/kubecd/pkg/svc/provider/gke"
	"github.com/devantler-tech/kubecd/pkg/svc/provider/minikube"
)

// Factory builds the provider for a cluster whose union has the factory's kind set.
type Factory func(cluster *v1alpha1.Cluster) (provider.ClusterProvider, error)

// Option configures a Resolver.
type Option func(*Resolver)

// WithFactory registers (or replaces) the factory for a provider kind.
func WithFactory(kind v1alpha1.ProviderKind, factory Factory) Option {
	return func(r *Resolver) {
		r.factories[kind] = factory
	}
}

// WithExistingContextOptions forwards options to the existing-context provider
// registered by Default, e.g. a kubeconfig loader.
func WithExistingContextOptions(opts ...existingcontext.Option) Option {
	return WithFactory(v1alpha1.ProviderKindExistingContext, existingContextFactory(opts...))
}

// Resolver maps clusters to providers. It is read-only after construction and
// safe for concurrent use.
type Resolver struct {
	factories map[v1alpha1.ProviderKind]Factory
}

// New creates a Resolver with only the factories given as options.
func New(opts ...Option) *Resolver {
	resolver := &Resolver{factories: make(map[v1alpha1.ProviderKind]Factory)}

	for _, opt := range opts {
		opt(resolver)
	}

	return resolver
}

// With returns a copy of r with opts applied. r itself is not modified.
func (r *Resolver) With(opts ...Option) *Resolver {
	clone := &Resolver{factories: maps.Clone(r.factories)}

	for _, opt := range opts {
		opt(clone)
	}

	return clone
}

// Default creates a Resolver with every built-in provider registered. Options
// are applied afterwards and may override built-ins.
func Default(opts ...Option) *Resolver {
	builtins := []Option{
		WithFactory(v1alpha1.ProviderKindGKE, gkeFactory),
		WithFactory(v1alpha1.ProviderKindAKS, aksFactory),
		WithFactory(v1alpha1.ProviderKindMinikube, minikubeFactory),
		WithFactory(v1alpha1.ProviderKindDockerForDesktop, dockerDesktopFactory),
		WithExistingContextOptions(),
	}

	return New(append(builtins, opts...)...)
}

// GetClusterProvider resolves a cluster with the default resolver.
func GetClusterProvider(cluster *v1alpha1.Cluster) (provider.ClusterProvider, error) {
	return Default().GetClusterProvider(cluster)
}

// Kinds returns the provider kinds the resolver can dispatch to, sorted by name.
func (r *Resolver) Kinds() []v1alpha1.ProviderKind {
	return slices.Sorted(maps.Keys(r.factories))
}

// GetClusterProvider returns the provider for the single variant set on the
// cluster's provider union. It fails with *provider.UnsupportedProviderError
// when no variant is set, when several are, or when the set variant has no
// registered factory.
func (r *Resolver) GetClusterProvider(cluster *v1alpha1.Cluster) (provider.ClusterProvider, error) {
	if cluster == nil {
		return nil, fmt.Errorf("cluster configuration is required: %w", provider.ErrUnsupportedProvider)
	}

	kinds := cluster.Provider.Kinds()
	if len(kinds) != 1 {
		return nil, &provider.UnsupportedProviderError{Cluster: cluster.Name, Kinds: kinds}
	}

	factory, ok := r.factories[kinds[0]]
	if !ok {
		return nil, &provider.UnsupportedProviderError{Cluster: cluster.Name, Kinds: kinds}
	}

	return factory(cluster)
}

// --- built-in factories ---

//nolint:ireturn // factories return the provider interface by design
func gkeFactory(cluster *v1alpha1.Cluster) (provider.ClusterProvider, error) {
	return gke.NewProvider(cluster), nil
}

//nolint:ireturn
func aksFactory(cluster *v1alpha1.Cluster) (provider.ClusterProvider, error) {
	return aks.NewProvider(cluster), nil
}

//nolint:ireturn
func minikubeFactory(cluster *v1alpha1.Cluster) (provider.ClusterProvider, error) {
	return minikube.NewProvider(cluster), nil
}

//nolint:ireturn
func dockerDesktopFactory(cluster *v1alpha1.Cluster) (provider.ClusterProvider, error) {
	return dockerdesktop.NewProvider(cluster), nil
}

func existingContextFactory(opts ...existingcontext.Option) Factory {
	return func(cluster *v1alpha1.Cluster) (provider.ClusterProvider, error) {
		return existingcontext.NewProvider(cluster, opts...), nil
	}
}

package di

import (
	"fmt"

	"github.com/devantler-tech/kubecd/pkg/svc/providerresolver"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// ResolveProviderResolver retrieves the provider resolver from the injector.
func ResolveProviderResolver(injector Injector) (*providerresolver.Resolver, error) {
	resolver, err := do.Invoke[*providerresolver.Resolver](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve provider resolver dependency: %w", err)
	}

	return resolver, nil
}

// ResolveConfigManagerFactory retrieves the config manager factory from the injector.
func ResolveConfigManagerFactory(injector Injector) (ConfigManagerFactory, error) {
	factory, err := do.Invoke[ConfigManagerFactory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve config manager factory dependency: %w", err)
	}

	return factory, nil
}

// WithProviderResolver decorates a handler so the provider resolver is resolved for it.
func WithProviderResolver(
	handler func(cmd *cobra.Command, injector Injector, resolver *providerresolver.Resolver) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		resolver, err := ResolveProviderResolver(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, resolver)
	}
}

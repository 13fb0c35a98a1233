package di

import (
	"io"

	kubecdconfigmanager "github.com/devantler-tech/kubecd/pkg/io/config-manager/kubecd"
	"github.com/devantler-tech/kubecd/pkg/svc/providerresolver"
	"github.com/samber/do/v2"
)

// ConfigManagerFactory builds a config manager that writes notifications to writer.
type ConfigManagerFactory func(writer io.Writer) *kubecdconfigmanager.ConfigManager

// NewRuntime constructs the runtime used by the root command: the default provider
// resolver and a config manager factory reading from the OS filesystem.
func NewRuntime(modules ...Module) *Runtime {
	return New(append([]Module{
		provideProviderResolver,
		provideConfigManagerFactory,
	}, modules...)...)
}

func provideProviderResolver(i Injector) error {
	do.Provide(i, func(Injector) (*providerresolver.Resolver, error) {
		return providerresolver.Default(), nil
	})

	return nil
}

func provideConfigManagerFactory(i Injector) error {
	do.Provide(i, func(Injector) (ConfigManagerFactory, error) {
		return func(writer io.Writer) *kubecdconfigmanager.ConfigManager {
			return kubecdconfigmanager.NewConfigManager(writer)
		}, nil
	})

	return nil
}

// OverrideConfigManagerFactory replaces the registered config manager factory.
func OverrideConfigManagerFactory(factory ConfigManagerFactory) Module {
	return func(i Injector) error {
		do.Override(i, func(Injector) (ConfigManagerFactory, error) {
			return factory, nil
		})

		return nil
	}
}

// OverrideProviderResolver replaces the registered provider resolver.
func OverrideProviderResolver(resolver *providerresolver.Resolver) Module {
	return func(i Injector) error {
		do.Override(i, func(Injector) (*providerresolver.Resolver, error) {
			return resolver, nil
		})

		return nil
	}
}

// Package di wires kubecd's services into a samber/do injector for CLI commands.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to command handlers.
type Injector = do.Injector

// Module registers services with an injector.
type Module func(Injector) error

// Runtime builds a fresh injector from its modules for every invocation.
type Runtime struct {
	modules []Module
}

// New creates a Runtime from base modules. Nil modules are skipped.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke creates an injector, applies the base modules followed by extra, runs
// handler and shuts the injector down. A module error is returned unchanged and
// handler is not called.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()
	defer func() { _ = injector.Shutdown() }()

	for _, module := range append(append([]Module{}, r.modules...), extra...) {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler to cobra's RunE, resolving dependencies from rt.
func RunEWithRuntime(
	rt *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return rt.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		})
	}
}

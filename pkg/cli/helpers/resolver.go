package helpers

import (
	"fmt"

	"github.com/devantler-tech/kubecd/pkg/di"
	"github.com/devantler-tech/kubecd/pkg/fsutil"
	"github.com/devantler-tech/kubecd/pkg/svc/provider/existingcontext"
	"github.com/devantler-tech/kubecd/pkg/svc/providerresolver"
	"github.com/devantler-tech/kubecd/pkg/utils/envvar"
	"github.com/spf13/cobra"
)

// ProviderResolver returns the injected provider resolver, reading existing
// contexts from the file named by --kubeconfig when that flag is set.
func ProviderResolver(cmd *cobra.Command, injector di.Injector) (*providerresolver.Resolver, error) {
	resolver, err := di.ResolveProviderResolver(injector)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Lookup(KubeconfigFlagName) == nil {
		return resolver, nil
	}

	path, err := cmd.Flags().GetString(KubeconfigFlagName)
	if err != nil {
		return nil, fmt.Errorf("read --%s flag: %w", KubeconfigFlagName, err)
	}

	if path == "" {
		return resolver, nil
	}

	path, err = fsutil.ExpandHomePath(envvar.Expand(path))
	if err != nil {
		return nil, err
	}

	return resolver.With(providerresolver.WithExistingContextOptions(
		existingcontext.WithKubeconfigLoader(existingcontext.FileKubeconfigLoader(path)),
	)), nil
}

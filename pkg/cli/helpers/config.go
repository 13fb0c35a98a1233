package helpers

import (
	"fmt"

	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/di"
	configmanager "github.com/devantler-tech/kubecd/pkg/io/config-manager"
	"github.com/spf13/cobra"
)

// LoadConfig builds a config manager from the injector, binds it to cmd's --config
// flag and loads the environments file. Loading notifications are only shown with
// --verbose.
func LoadConfig(
	cmd *cobra.Command,
	injector di.Injector,
	skipValidation bool,
) (*v1alpha1.Config, error) {
	factory, err := di.ResolveConfigManagerFactory(injector)
	if err != nil {
		return nil, err
	}

	manager := factory(cmd.ErrOrStderr())

	err = manager.BindFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	cfg, err := manager.Load(configmanager.LoadOptions{
		Silent:         !IsVerbose(cmd),
		SkipValidation: skipValidation,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

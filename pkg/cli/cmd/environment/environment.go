// Package environment provides the "kubecd environment" command group.
package environment

import (
	"github.com/devantler-tech/kubecd/pkg/di"
	"github.com/spf13/cobra"
)

// NewEnvironmentCmd creates the environment command group.
func NewEnvironmentCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environment",
		Aliases: []string{"environments", "env"},
		Short:   "Inspect configured environments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewListCmd(runtimeContainer))

	return cmd
}

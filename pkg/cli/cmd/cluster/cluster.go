// Package cluster provides the "kubecd cluster" command group.
package cluster

import (
	"github.com/devantler-tech/kubecd/pkg/di"
	"github.com/spf13/cobra"
)

// NewClusterCmd creates the cluster command group.
func NewClusterCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cluster",
		Aliases: []string{"clusters"},
		Short:   "Inspect configured clusters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewListCmd(runtimeContainer))

	return cmd
}

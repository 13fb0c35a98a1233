package helpers

import "github.com/spf13/cobra"

const (
	// ConfigFlagName is the persistent flag selecting the environments file.
	ConfigFlagName = "config"
	// VerboseFlagName is the persistent flag enabling debug logging.
	VerboseFlagName = "verbose"
	// KubeconfigFlagName is the persistent flag selecting the kubeconfig that
	// existing-context clusters are looked up in.
	KubeconfigFlagName = "kubeconfig"
)

// IsVerbose reports whether --verbose is set on cmd or any parent.
func IsVerbose(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool(VerboseFlagName)

	return err == nil && verbose
}

// Package configmanager loads the kubecd environments file (kubecd.yaml) into a
// v1alpha1.Config.
//
// The file is looked up in the working directory and in $HOME/.kubecd, or read
// from the path given by the --config flag or the KUBECD_CONFIG environment
// variable. String values may reference environment variables as ${NAME}.
//
// This package shares the "configmanager" package name with its parent directory
// (pkg/io/config-manager). Import with an alias for clarity:
//
//	import kubecdconfigmanager "github.com/devantler-tech/kubecd/pkg/io/config-manager/kubecd"
package configmanager

// Package cmd provides the command-line interface for kubecd.
//
// The root command wires the DI runtime and global flags, and delegates to:
//   - init: print the commands that initialise environment kube contexts
//   - cluster: inspect configured clusters
//   - environment: inspect configured environments
//   - schema: emit the JSON schema of the environments file
package cmd

// Package utils groups small helpers shared across kubecd:
//
//   - notify: formatted CLI messages with symbols and colors
//   - envvar: ${VAR} expansion for values read from the environments file
package utils

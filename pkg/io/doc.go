// Package io groups configuration input and output.
//
// Subpackages:
//   - config-manager: loading the kubecd environments file
//   - schema: JSON schema generation for the environments file
package io

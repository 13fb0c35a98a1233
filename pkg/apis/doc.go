// Package apis provides API type definitions for kubecd resources.
//
// Types are versioned following Kubernetes API conventions:
//
//   - kubecd/v1alpha1: the environments file (Config, Cluster, Provider, Environment)
package apis

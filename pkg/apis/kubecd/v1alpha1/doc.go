// Package v1alpha1 contains the kubecd configuration API: clusters, the cloud
// provider union describing how to reach them, and the environments that
// target them.
//
// Types in this package are plain value objects. They are decoded by the config
// manager and consumed read-only by the provider resolver.
package v1alpha1

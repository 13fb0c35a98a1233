// Package providerresolver selects the ClusterProvider implementation for a
// cluster by inspecting which variant of its provider union is set.
//
// Dispatch goes through a table keyed by v1alpha1.ProviderKind. Supporting a new
// cloud means adding a variant to v1alpha1.Provider, a provider package, and one
// entry in Default; existing providers are not touched.
package providerresolver

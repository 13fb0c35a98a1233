// Package configmanager defines how kubecd loads its configuration.
// The kubecd environments file loader lives in the kubecd subpackage.
package configmanager

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// Silent suppresses all loading notifications when true.
	Silent bool
	// SkipValidation skips config validation when true.
	// Listing commands use it to show a file that does not validate yet.
	SkipValidation bool
}

// ConfigManager loads a configuration of type T.
type ConfigManager[T any] interface {
	// Load returns the loaded config, either freshly loaded or previously cached.
	Load(opts LoadOptions) (*T, error)
}

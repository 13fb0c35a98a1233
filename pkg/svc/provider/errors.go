package provider

import (
	"errors"
	"fmt"
	"strings"

	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
)

// Common errors for provider resolution and command generation.
var (
	// ErrUnsupportedProvider is returned when a cluster's provider union has no
	// recognized variant set, or more than one.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrProviderConfig is returned when a provider's own settings are inconsistent.
	ErrProviderConfig = errors.New("invalid provider configuration")
)

// UnsupportedProviderError reports a cluster whose provider cannot be resolved.
// Kinds holds the populated variants: empty when none is set, several when the
// union is ambiguous, or one kind that has no registered provider.
type UnsupportedProviderError struct {
	Cluster string
	Kinds   []v1alpha1.ProviderKind
}

// Error implements the error interface.
func (e *UnsupportedProviderError) Error() string {
	switch len(e.Kinds) {
	case 0:
		return fmt.Sprintf("cluster %q: %s: no provider set", e.Cluster, ErrUnsupportedProvider)
	case 1:
		return fmt.Sprintf("cluster %q: %s: %s", e.Cluster, ErrUnsupportedProvider, e.Kinds[0])
	default:
		kinds := make([]string, 0, len(e.Kinds))
		for _, kind := range e.Kinds {
			kinds = append(kinds, string(kind))
		}

		return fmt.Sprintf(
			"cluster %q: %s: ambiguous provider, only one may be set (got %s)",
			e.Cluster, ErrUnsupportedProvider, strings.Join(kinds, ", "),
		)
	}
}

// Unwrap returns ErrUnsupportedProvider.
func (e *UnsupportedProviderError) Unwrap() error {
	return ErrUnsupportedProvider
}

// ProviderConfigError reports a provider-specific invariant violation.
type ProviderConfigError struct {
	Cluster  string
	Provider v1alpha1.ProviderKind
	Reason   string
}

// Error implements the error interface.
func (e *ProviderConfigError) Error() string {
	return fmt.Sprintf("cluster %q: %s (%s): %s", e.Cluster, ErrProviderConfig, e.Provider, e.Reason)
}

// Unwrap returns ErrProviderConfig.
func (e *ProviderConfigError) Unwrap() error {
	return ErrProviderConfig
}

// NewProviderConfigError builds a ProviderConfigError with a formatted reason.
func NewProviderConfigError(
	cluster string,
	kind v1alpha1.ProviderKind,
	format string,
	args ...any,
) *ProviderConfigError {
	return &ProviderConfigError{
		Cluster:  cluster,
		Provider: kind,
		Reason:   fmt.Sprintf(format, args...),
	}
}

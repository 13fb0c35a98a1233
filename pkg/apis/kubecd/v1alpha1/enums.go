package v1alpha1

import (
	"fmt"
	"strings"
)

// EnumValuer is implemented by string-based enum types to provide their valid values.
// The schema generator uses this interface to discover enum constraints.
type EnumValuer interface {
	// ValidValues returns all valid string values for this enum type.
	ValidValues() []string
}

// --- ProviderKind ---

// ProviderKind names a variant of the Provider union.
type ProviderKind string

const (
	// ProviderKindGKE is Google Kubernetes Engine.
	ProviderKindGKE ProviderKind = "GKE"
	// ProviderKindAKS is Azure Kubernetes Service.
	ProviderKindAKS ProviderKind = "AKS"
	// ProviderKindMinikube is a local minikube cluster.
	ProviderKindMinikube ProviderKind = "Minikube"
	// ProviderKindDockerForDesktop is the Docker Desktop bundled cluster.
	ProviderKindDockerForDesktop ProviderKind = "DockerForDesktop"
	// ProviderKindExistingContext is a context already present in the kubeconfig.
	ProviderKindExistingContext ProviderKind = "ExistingContext"
)

// ValidProviderKinds returns supported provider kinds.
func ValidProviderKinds() []ProviderKind {
	return []ProviderKind{
		ProviderKindGKE,
		ProviderKindAKS,
		ProviderKindMinikube,
		ProviderKindDockerForDesktop,
		ProviderKindExistingContext,
	}
}

// Set for ProviderKind (pflag.Value interface).
func (k *ProviderKind) Set(value string) error {
	for _, kind := range ValidProviderKinds() {
		if strings.EqualFold(value, string(kind)) {
			*k = kind

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s)",
		ErrInvalidProviderKind,
		value,
		strings.Join(new(ProviderKind).ValidValues(), ", "),
	)
}

// String returns the string representation of the ProviderKind.
func (k *ProviderKind) String() string {
	return string(*k)
}

// Type returns the type of the ProviderKind.
func (k *ProviderKind) Type() string {
	return "ProviderKind"
}

// ValidValues returns all valid ProviderKind values as strings.
func (k *ProviderKind) ValidValues() []string {
	kinds := ValidProviderKinds()
	values := make([]string, 0, len(kinds))

	for _, kind := range kinds {
		values = append(values, string(kind))
	}

	return values
}

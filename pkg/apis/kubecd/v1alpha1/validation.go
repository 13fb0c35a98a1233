package v1alpha1

import (
	"errors"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// NameMaxLength is the maximum length for cluster and environment names.
const NameMaxLength = validation.DNS1035LabelMaxLength

// ValidateName validates that a cluster or environment name is a DNS label that
// starts with a letter (RFC 1035).
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}

	if len(name) > NameMaxLength {
		return fmt.Errorf(
			"%w: %q exceeds max %d characters (got %d)",
			ErrNameTooLong, name, NameMaxLength, len(name),
		)
	}

	if msgs := validation.IsDNS1035Label(name); len(msgs) > 0 {
		return fmt.Errorf("%w: %q: %s", ErrInvalidName, name, strings.Join(msgs, "; "))
	}

	return nil
}

// Validate checks type metadata (when set), names, uniqueness, environment references and the required
// fields of every populated provider variant. It collects all problems into a
// single joined error.
//
// Provider union exclusivity and GKE region/zone exclusivity are left to the
// provider resolver and the GKE provider, which report them when commands are
// generated.
func (c *Config) Validate() error {
	var errs []error

	if c.APIVersion != "" && c.APIVersion != APIVersion {
		errs = append(errs, fmt.Errorf("%w: apiVersion %q, expected %q", ErrInvalidTypeMeta, c.APIVersion, APIVersion))
	}

	if c.Kind != "" && c.Kind != Kind {
		errs = append(errs, fmt.Errorf("%w: kind %q, expected %q", ErrInvalidTypeMeta, c.Kind, Kind))
	}

	seenClusters := make(map[string]struct{}, len(c.Clusters))

	for i := range c.Clusters {
		cluster := &c.Clusters[i]

		if err := ValidateName(cluster.Name); err != nil {
			errs = append(errs, fmt.Errorf("clusters[%d]: %w", i, err))
		}

		if _, dup := seenClusters[cluster.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: cluster %q", ErrDuplicateName, cluster.Name))
		}

		seenClusters[cluster.Name] = struct{}{}

		errs = append(errs, validateProviderFields(cluster)...)
	}

	seenEnvs := make(map[string]struct{}, len(c.Environments))

	for i := range c.Environments {
		env := &c.Environments[i]

		if err := ValidateName(env.Name); err != nil {
			errs = append(errs, fmt.Errorf("environments[%d]: %w", i, err))
		}

		if _, dup := seenEnvs[env.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: environment %q", ErrDuplicateName, env.Name))
		}

		seenEnvs[env.Name] = struct{}{}

		if _, err := c.ClusterForEnvironment(env); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func validateProviderFields(cluster *Cluster) []error {
	var errs []error

	required := func(value, field string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%w: cluster %q: %s", ErrMissingField, cluster.Name, field))
		}
	}

	if gke := cluster.Provider.GKE; gke != nil {
		required(gke.Project, "provider.gke.project")
		required(gke.ClusterName, "provider.gke.clusterName")
	}

	if aks := cluster.Provider.AKS; aks != nil {
		required(aks.ResourceGroup, "provider.aks.resourceGroup")
		required(aks.ClusterName, "provider.aks.clusterName")
	}

	if existing := cluster.Provider.ExistingContext; existing != nil {
		required(existing.ContextName, "provider.existingContext.contextName")
	}

	return errs
}

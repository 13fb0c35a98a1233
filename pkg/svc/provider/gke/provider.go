// Package gke provides the Google Kubernetes Engine cluster provider.
package gke

import (
	"regexp"

	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
)

// zoneSuffix matches the trailing zone letter of a GCP zone ("us-central1-a").
var zoneSuffix = regexp.MustCompile(`-[a-z]$`)

// Provider generates gcloud commands for a regional or zonal GKE cluster.
type Provider struct {
	cluster string
	config  v1alpha1.GkeProvider
}

var _ provider.ClusterProvider = (*Provider)(nil)

// NewProvider binds a GKE provider to a cluster. The GKE settings are copied so
// later changes to the cluster value do not leak into generated commands.
func NewProvider(cluster *v1alpha1.Cluster) *Provider {
	config := *cluster.Provider.GKE
	config.Region = copyString(config.Region)
	config.Zone = copyString(config.Zone)

	return &Provider{
		cluster: cluster.Name,
		config:  config,
	}
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}

	copied := *value

	return &copied
}

// ClusterInitCommands returns the gcloud get-credentials command for the cluster.
func (p *Provider) ClusterInitCommands() ([][]string, error) {
	flag, location, err := p.locationFlag()
	if err != nil {
		return nil, err
	}

	return [][]string{{
		"gcloud", "container", "clusters", "get-credentials",
		"--project", p.config.Project,
		flag, location,
		p.config.ClusterName,
	}}, nil
}

// ClusterName returns the kubeconfig cluster entry gcloud writes:
// gke_<project>_<location>_<cluster>.
func (p *Provider) ClusterName() (string, error) {
	_, location, err := p.locationFlag()
	if err != nil {
		return "", err
	}

	return "gke_" + p.config.Project + "_" + location + "_" + p.config.ClusterName, nil
}

// UserName returns the kubeconfig user entry, which gcloud names like the cluster.
func (p *Provider) UserName() (string, error) {
	return p.ClusterName()
}

// Namespace returns the environment namespace.
func (p *Provider) Namespace(env *v1alpha1.Environment) string {
	return provider.EnvironmentNamespace(env)
}

// Region returns the cluster's region. For zonal clusters it is derived from
// the zone by dropping the zone letter.
func (p *Provider) Region() (string, error) {
	flag, location, err := p.locationFlag()
	if err != nil {
		return "", err
	}

	if flag == "--zone" {
		return zoneSuffix.ReplaceAllString(location, ""), nil
	}

	return location, nil
}

// locationFlag picks --region or --zone. Exactly one of them must be set.
func (p *Provider) locationFlag() (string, string, error) {
	region := deref(p.config.Region)
	zone := deref(p.config.Zone)

	switch {
	case region != "" && zone != "":
		return "", "", provider.NewProviderConfigError(
			p.cluster, v1alpha1.ProviderKindGKE,
			"region %q and zone %q are mutually exclusive", region, zone,
		)
	case region != "":
		return "--region", region, nil
	case zone != "":
		return "--zone", zone, nil
	default:
		return "", "", provider.NewProviderConfigError(
			p.cluster, v1alpha1.ProviderKindGKE, "one of region or zone must be set",
		)
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

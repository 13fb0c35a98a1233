package v1alpha1

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// Group is the API group for kubecd.
	Group = "kubecd.io"
	// Version is the API version for kubecd.
	Version = "v1alpha1"
	// Kind is the kind of the kubecd environments file.
	Kind = "Config"
	// APIVersion is the full API version for kubecd.
	APIVersion = Group + "/" + Version
)

// --- Core Types ---

// Config is the root of the kubecd environments file.
type Config struct {
	metav1.TypeMeta `json:",inline"`

	Clusters     []Cluster     `json:"clusters,omitempty"     jsonschema:"description=Clusters that environments can be deployed to"`
	Environments []Environment `json:"environments,omitempty" jsonschema:"description=Environments mapping a name to a cluster and namespace"`
}

// Cluster is a named target compute cluster.
type Cluster struct {
	Name     string   `json:"name"     jsonschema:"description=Unique cluster name"`
	Provider Provider `json:"provider" jsonschema:"description=Cloud or platform hosting the cluster"`
}

// Environment binds a kube context name to a cluster and a namespace.
type Environment struct {
	Name          string `json:"name"`
	ClusterName   string `json:"clusterName"`
	KubeNamespace string `json:"kubeNamespace,omitempty"`
}

// --- Provider Union ---

// Provider is a union of the supported cluster providers. Exactly one field is
// expected to be set; the resolver rejects zero or several.
type Provider struct {
	GKE              *GkeProvider              `json:"gke,omitempty"`
	AKS              *AksProvider              `json:"aks,omitempty"`
	Minikube         *MinikubeProvider         `json:"minikube,omitempty"`
	DockerForDesktop *DockerForDesktopProvider `json:"dockerForDesktop,omitempty"`
	ExistingContext  *ExistingContextProvider  `json:"existingContext,omitempty"`
}

// GkeProvider describes a Google Kubernetes Engine cluster. Region and Zone are
// mutually exclusive: a regional cluster sets Region, a zonal cluster sets Zone.
type GkeProvider struct {
	Project     string  `json:"project"`
	ClusterName string  `json:"clusterName"`
	Region      *string `json:"region,omitempty"`
	Zone        *string `json:"zone,omitempty"`
}

// AksProvider describes an Azure Kubernetes Service cluster.
type AksProvider struct {
	ResourceGroup string `json:"resourceGroup"`
	ClusterName   string `json:"clusterName"`
}

// MinikubeProvider describes a local minikube cluster.
type MinikubeProvider struct{}

// DockerForDesktopProvider describes the cluster bundled with Docker Desktop.
type DockerForDesktopProvider struct{}

// ExistingContextProvider reuses a context that already exists in the local kubeconfig.
type ExistingContextProvider struct {
	ContextName string `json:"contextName"`
}

// Kinds returns the kinds of all populated variants, in declaration order.
func (p Provider) Kinds() []ProviderKind {
	var kinds []ProviderKind

	if p.GKE != nil {
		kinds = append(kinds, ProviderKindGKE)
	}

	if p.AKS != nil {
		kinds = append(kinds, ProviderKindAKS)
	}

	if p.Minikube != nil {
		kinds = append(kinds, ProviderKindMinikube)
	}

	if p.DockerForDesktop != nil {
		kinds = append(kinds, ProviderKindDockerForDesktop)
	}

	if p.ExistingContext != nil {
		kinds = append(kinds, ProviderKindExistingContext)
	}

	return kinds
}

// --- Lookups ---

// Cluster returns the cluster with the given name, or nil.
func (c *Config) Cluster(name string) *Cluster {
	for i := range c.Clusters {
		if c.Clusters[i].Name == name {
			return &c.Clusters[i]
		}
	}

	return nil
}

// Environment returns the environment with the given name, or nil.
func (c *Config) Environment(name string) *Environment {
	for i := range c.Environments {
		if c.Environments[i].Name == name {
			return &c.Environments[i]
		}
	}

	return nil
}

// ClusterForEnvironment returns the cluster an environment targets.
func (c *Config) ClusterForEnvironment(env *Environment) (*Cluster, error) {
	cluster := c.Cluster(env.ClusterName)
	if cluster == nil {
		return nil, fmt.Errorf("%w: environment %q references %q", ErrUnknownCluster, env.Name, env.ClusterName)
	}

	return cluster, nil
}

// KubeContextName returns the kube context name kubecd uses for an environment.
func KubeContextName(envName string) string {
	return "env:" + envName
}

package v1alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

// NewConfig creates an empty Config with type metadata set.
func NewConfig() *Config {
	return &Config{
		TypeMeta: metav1.TypeMeta{
			Kind:       Kind,
			APIVersion: APIVersion,
		},
		Clusters:     nil,
		Environments: nil,
	}
}

// NewGKERegionalCluster builds a Cluster backed by a regional GKE cluster.
func NewGKERegionalCluster(name, project, clusterName, region string) Cluster {
	return Cluster{
		Name: name,
		Provider: Provider{
			GKE: &GkeProvider{Project: project, ClusterName: clusterName, Region: &region},
		},
	}
}

// NewGKEZonalCluster builds a Cluster backed by a zonal GKE cluster.
func NewGKEZonalCluster(name, project, clusterName, zone string) Cluster {
	return Cluster{
		Name: name,
		Provider: Provider{
			GKE: &GkeProvider{Project: project, ClusterName: clusterName, Zone: &zone},
		},
	}
}

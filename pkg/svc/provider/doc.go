// Package provider defines how kubecd reaches the cluster behind an environment.
//
// A ClusterProvider is bound to one cluster and knows:
//   - the commands that fetch credentials for the cluster into the local kubeconfig
//   - the kubeconfig cluster and user entry names those commands produce
//   - the namespace an environment should default to
//
// Implementations live in subpackages, one per cloud or platform:
//   - gke: Google Kubernetes Engine (gcloud)
//   - aks: Azure Kubernetes Service (az)
//   - minikube, dockerdesktop: local clusters that need no credentials
//   - existingcontext: reuse of a context already present in the kubeconfig
//
// Providers only generate command argument vectors; running them is left to the caller.
package provider

// Package svc provides the service layer of kubecd.
//
// Subpackages:
//   - provider: the cluster provider contract and one package per provider
//   - providerresolver: dispatch from a cluster's provider union to its provider
package svc

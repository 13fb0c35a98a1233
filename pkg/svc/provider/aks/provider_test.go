package aks_test

import (
	"testing"

	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
	"github.com/devantler-tech/kubecd/pkg/svc/provider/aks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCluster(resourceGroup, clusterName string) *v1alpha1.Cluster {
	return &v1alpha1.Cluster{
		Name: "azure-cluster",
		Provider: v1alpha1.Provider{AKS: &v1alpha1.AksProvider{
			ResourceGroup: resourceGroup,
			ClusterName:   clusterName,
		}},
	}
}

func TestClusterInitCommands(t *testing.T) {
	t.Parallel()

	commands, err := aks.NewProvider(newCluster("my-rg", "my-aks")).ClusterInitCommands()

	require.NoError(t, err)
	assert.Equal(t, [][]string{{
		"az", "aks", "get-credentials", "--resource-group", "my-rg", "--name", "my-aks",
	}}, commands)
}

func TestClusterAndUserName(t *testing.T) {
	t.Parallel()

	prov := aks.NewProvider(newCluster("my-rg", "my-aks"))

	clusterName, err := prov.ClusterName()
	require.NoError(t, err)
	assert.Equal(t, "my-aks", clusterName)

	userName, err := prov.UserName()
	require.NoError(t, err)
	assert.Equal(t, "clusterUser_my-rg_my-aks", userName)
}

func TestMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		resourceGroup string
		clusterName   string
		reason        string
	}{
		{name: "resource group", clusterName: "my-aks", reason: "resourceGroup must be set"},
		{name: "cluster name", resourceGroup: "my-rg", reason: "clusterName must be set"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			prov := aks.NewProvider(newCluster(testCase.resourceGroup, testCase.clusterName))

			_, err := prov.ClusterInitCommands()
			require.ErrorIs(t, err, provider.ErrProviderConfig)

			var configErr *provider.ProviderConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, testCase.reason, configErr.Reason)

			_, err = prov.UserName()
			require.ErrorIs(t, err, provider.ErrProviderConfig)
		})
	}
}

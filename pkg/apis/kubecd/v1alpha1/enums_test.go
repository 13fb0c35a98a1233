package v1alpha1_test

import (
	"testing"

	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderKindSet_CaseInsensitive(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected v1alpha1.ProviderKind
	}{
		{"gke", v1alpha1.ProviderKindGKE},
		{"AKS", v1alpha1.ProviderKindAKS},
		{"minikube", v1alpha1.ProviderKindMinikube},
		{"dockerfordesktop", v1alpha1.ProviderKindDockerForDesktop},
		{"EXISTINGCONTEXT", v1alpha1.ProviderKindExistingContext},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			var kind v1alpha1.ProviderKind
			require.NoError(t, kind.Set(testCase.input))
			assert.Equal(t, testCase.expected, kind)
		})
	}
}

func TestProviderKindSet_InvalidListsValidOptions(t *testing.T) {
	t.Parallel()

	var kind v1alpha1.ProviderKind

	err := kind.Set("eks")
	require.Error(t, err)

	require.ErrorIs(t, err, v1alpha1.ErrInvalidProviderKind)
	assert.Contains(t, err.Error(), "GKE")
	assert.Contains(t, err.Error(), "ExistingContext")
}

func TestProviderKind_ValidValues(t *testing.T) {
	t.Parallel()

	var kind v1alpha1.ProviderKind

	values := kind.ValidValues()
	assert.Equal(t, []string{"GKE", "AKS", "Minikube", "DockerForDesktop", "ExistingContext"}, values)
	assert.Equal(t, "ProviderKind", kind.Type())
}

func TestProvider_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider v1alpha1.Provider
		expected []v1alpha1.ProviderKind
	}{
		{
			name:     "empty",
			provider: v1alpha1.Provider{},
			expected: nil,
		},
		{
			name:     "gke only",
			provider: v1alpha1.Provider{GKE: &v1alpha1.GkeProvider{}},
			expected: []v1alpha1.ProviderKind{v1alpha1.ProviderKindGKE},
		},
		{
			name: "ambiguous keeps declaration order",
			provider: v1alpha1.Provider{
				ExistingContext: &v1alpha1.ExistingContextProvider{},
				GKE:             &v1alpha1.GkeProvider{},
				Minikube:        &v1alpha1.MinikubeProvider{},
			},
			expected: []v1alpha1.ProviderKind{
				v1alpha1.ProviderKindGKE,
				v1alpha1.ProviderKindMinikube,
				v1alpha1.ProviderKindExistingContext,
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.provider.Kinds())
		})
	}
}

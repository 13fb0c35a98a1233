package provider

import (
	v1alpha1 "github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of the ClusterProvider interface for testing.
type MockProvider struct {
	mock.Mock
}

// NewMockProvider creates a new MockProvider instance.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// ClusterInitCommands mocks generating cluster init commands.
func (m *MockProvider) ClusterInitCommands() ([][]string, error) {
	args := m.Called()

	result, ok := args.Get(0).([][]string)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// ClusterName mocks returning the kubeconfig cluster name.
func (m *MockProvider) ClusterName() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// UserName mocks returning the kubeconfig user name.
func (m *MockProvider) UserName() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Namespace mocks returning the environment namespace.
func (m *MockProvider) Namespace(env *v1alpha1.Environment) string {
	args := m.Called(env)

	return args.String(0)
}

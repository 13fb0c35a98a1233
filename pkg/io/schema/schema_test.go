package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/devantler-tech/kubecd/pkg/io/schema"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/yaml"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	generated := schema.Generate()

	assert.Empty(t, generated.ID)
	assert.Equal(t, "kubecd Configuration", generated.Title)

	kind, ok := generated.Properties.Get("kind")
	require.True(t, ok)
	assert.Equal(t, []any{"Config"}, kind.Enum)

	apiVersion, ok := generated.Properties.Get("apiVersion")
	require.True(t, ok)
	assert.Equal(t, []any{"kubecd.io/v1alpha1"}, apiVersion.Enum)
}

func TestMarshal_ProviderConstraints(t *testing.T) {
	t.Parallel()

	data, err := schema.Marshal()
	require.NoError(t, err)

	var doc struct {
		Properties struct {
			Clusters struct {
				Items struct {
					Required   []string `json:"required"`
					Properties struct {
						Provider struct {
							OneOf []struct {
								Required []string `json:"required"`
							} `json:"oneOf"`
							Properties map[string]struct {
								Required []string `json:"required"`
								OneOf    []struct {
									Required []string `json:"required"`
								} `json:"oneOf"`
							} `json:"properties"`
						} `json:"provider"`
					} `json:"properties"`
				} `json:"items"`
			} `json:"clusters"`
		} `json:"properties"`
	}

	require.NoError(t, json.Unmarshal(data, &doc))

	cluster := doc.Properties.Clusters.Items
	assert.ElementsMatch(t, []string{"name", "provider"}, cluster.Required)

	provider := cluster.Properties.Provider
	variants := make([]string, 0, len(provider.OneOf))

	for _, alternative := range provider.OneOf {
		variants = append(variants, alternative.Required...)
	}

	assert.Equal(t, []string{"gke", "aks", "minikube", "dockerForDesktop", "existingContext"}, variants)

	gke := provider.Properties["gke"]
	assert.ElementsMatch(t, []string{"project", "clusterName"}, gke.Required)
	require.Len(t, gke.OneOf, 2)
	assert.Equal(t, []string{"region"}, gke.OneOf[0].Required)
	assert.Equal(t, []string{"zone"}, gke.OneOf[1].Required)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	require.NoError(t, schema.Write(fs, "/out/schemas/kubecd.schema.json"))

	written, err := afero.ReadFile(fs, "/out/schemas/kubecd.schema.json")
	require.NoError(t, err)

	expected, err := schema.Marshal()
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(written))
}

func TestOpenAPI_Structural(t *testing.T) {
	t.Parallel()

	props, err := schema.OpenAPI()
	require.NoError(t, err)

	assert.Empty(t, props.Schema)
	assert.Equal(t, "object", props.Type)
	assert.Nil(t, props.AdditionalProperties)
	assert.Equal(t, []string{"Config"}, enumStrings(t, props.Properties["kind"].Enum))

	clusters := props.Properties["clusters"]
	require.NotNil(t, clusters.Items)
	require.NotNil(t, clusters.Items.Schema)

	cluster := clusters.Items.Schema
	assert.Nil(t, cluster.AdditionalProperties)

	provider := cluster.Properties["provider"]
	assert.Len(t, provider.OneOf, 5)

	gke := provider.Properties["gke"]
	assert.Nil(t, gke.AdditionalProperties)
	require.Len(t, gke.OneOf, 2)
	assert.Equal(t, []string{"zone"}, gke.OneOf[1].Required)
}

func TestWriteOpenAPI(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	require.NoError(t, schema.WriteOpenAPI(fs, "/out/kubecd.openapi.yaml"))

	written, err := afero.ReadFile(fs, "/out/kubecd.openapi.yaml")
	require.NoError(t, err)

	var decoded apiextensionsv1.JSONSchemaProps

	require.NoError(t, yaml.Unmarshal(written, &decoded))

	expected, err := schema.OpenAPI()
	require.NoError(t, err)

	expectedJSON, err := json.Marshal(expected)
	require.NoError(t, err)

	decodedJSON, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(expectedJSON), string(decodedJSON))
}

func enumStrings(t *testing.T, values []apiextensionsv1.JSON) []string {
	t.Helper()

	out := make([]string, 0, len(values))

	for _, value := range values {
		var s string

		require.NoError(t, json.Unmarshal(value.Raw, &s))
		out = append(out, s)
	}

	return out
}

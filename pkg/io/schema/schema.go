// Package schema generates the JSON schema of the kubecd environments file.
package schema

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/invopop/jsonschema"
	"github.com/spf13/afero"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/yaml"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

// Generate reflects v1alpha1.Config into a JSON schema. Provider unions and GKE
// locations are constrained with oneOf so editors flag ambiguous entries.
func Generate() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	schema := reflector.Reflect(&v1alpha1.Config{})
	customizeSchema(schema)

	return schema
}

// Marshal returns the indented JSON encoding of Generate.
func Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(Generate(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return append(data, '\n'), nil
}

// OpenAPI converts the schema into the OpenAPI v3 form used by a CRD's
// openAPIV3Schema. Draft-only keywords are dropped and additionalProperties is
// removed wherever properties are listed, as structural schemas require.
func OpenAPI() (*apiextensionsv1.JSONSchemaProps, error) {
	data, err := json.Marshal(Generate())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	var props apiextensionsv1.JSONSchemaProps

	err = json.Unmarshal(data, &props)
	if err != nil {
		return nil, fmt.Errorf("convert schema to openapi: %w", err)
	}

	props.Schema = ""
	props.ID = ""
	structural(&props)

	return &props, nil
}

// MarshalOpenAPI returns OpenAPI as YAML.
func MarshalOpenAPI() ([]byte, error) {
	props, err := OpenAPI()
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi schema: %w", err)
	}

	return data, nil
}

// Write writes the JSON schema to path on fs, creating parent directories.
func Write(fs afero.Fs, path string) error {
	data, err := Marshal()
	if err != nil {
		return err
	}

	return writeFile(fs, path, data)
}

// WriteOpenAPI writes the OpenAPI schema as YAML to path on fs.
func WriteOpenAPI(fs afero.Fs, path string) error {
	data, err := MarshalOpenAPI()
	if err != nil {
		return err
	}

	return writeFile(fs, path, data)
}

func writeFile(fs afero.Fs, path string, data []byte) error {
	err := fs.MkdirAll(filepath.Dir(path), dirPermissions)
	if err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	err = afero.WriteFile(fs, path, data, filePermissions)
	if err != nil {
		return fmt.Errorf("write schema to %s: %w", path, err)
	}

	return nil
}

func structural(props *apiextensionsv1.JSONSchemaProps) {
	if len(props.Properties) > 0 {
		props.AdditionalProperties = nil
	}

	for name, child := range props.Properties {
		structural(&child)
		props.Properties[name] = child
	}

	if props.Items != nil && props.Items.Schema != nil {
		structural(props.Items.Schema)
	}
}

func customizeSchema(schema *jsonschema.Schema) {
	schema.ID = ""
	schema.Title = "kubecd Configuration"
	schema.Description = "JSON schema for the kubecd environments file (kubecd.yaml)"

	if schema.Properties == nil {
		return
	}

	if p, ok := schema.Properties.Get("kind"); ok && p != nil {
		p.Enum = []any{v1alpha1.Kind}
	}

	if p, ok := schema.Properties.Get("apiVersion"); ok && p != nil {
		p.Enum = []any{v1alpha1.APIVersion}
	}

	provider := property(schema, "clusters", "items", "provider")
	if provider == nil || provider.Properties == nil {
		return
	}

	provider.OneOf = requireOneOf(propertyNames(provider)...)

	if gke, ok := provider.Properties.Get("gke"); ok && gke != nil {
		gke.OneOf = requireOneOf("region", "zone")
	}
}

// property follows a path of property names; "items" steps into an array's item schema.
func property(schema *jsonschema.Schema, path ...string) *jsonschema.Schema {
	current := schema

	for _, name := range path {
		if current == nil {
			return nil
		}

		if name == "items" {
			current = current.Items

			continue
		}

		if current.Properties == nil {
			return nil
		}

		next, ok := current.Properties.Get(name)
		if !ok {
			return nil
		}

		current = next
	}

	return current
}

func propertyNames(schema *jsonschema.Schema) []string {
	names := make([]string, 0, schema.Properties.Len())
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

func requireOneOf(names ...string) []*jsonschema.Schema {
	alternatives := make([]*jsonschema.Schema, 0, len(names))
	for _, name := range names {
		alternatives = append(alternatives, &jsonschema.Schema{Required: []string{name}})
	}

	return alternatives
}

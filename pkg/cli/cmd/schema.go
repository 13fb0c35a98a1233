package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/devantler-tech/kubecd/pkg/io/schema"
	"github.com/devantler-tech/kubecd/pkg/utils/notify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command. It writes to stdout unless a path is given.
func NewSchemaCmd() *cobra.Command {
	return newSchemaCmd(afero.NewOsFs())
}

func newSchemaCmd(fs afero.Fs) *cobra.Command {
	var openAPI bool

	cmd := &cobra.Command{
		Use:   "schema [PATH]",
		Short: "Print the JSON schema of the environments file",
		Long: heredoc.Doc(`
			Print the JSON schema describing kubecd.yaml. Point your editor's YAML
			language server at it to get completion and validation.

			With --openapi the schema is printed as YAML in the OpenAPI v3 form a
			CustomResourceDefinition expects under openAPIV3Schema.
		`),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			marshal, write := schema.Marshal, schema.Write
			if openAPI {
				marshal, write = schema.MarshalOpenAPI, schema.WriteOpenAPI
			}

			if len(args) == 0 {
				data, err := marshal()
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(data)
				if err != nil {
					return fmt.Errorf("write schema: %w", err)
				}

				return nil
			}

			err := write(fs, args[0])
			if err != nil {
				return err
			}

			notify.Successf(cmd.OutOrStdout(), "schema written to %s", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&openAPI, "openapi", false, "Emit a CRD-style OpenAPI v3 schema as YAML")

	return cmd
}

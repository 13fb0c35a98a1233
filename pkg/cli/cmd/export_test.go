package cmd

// NewSchemaCmdWithFs exposes the filesystem-injectable schema command to tests.
var NewSchemaCmdWithFs = newSchemaCmd

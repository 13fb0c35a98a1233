package cmd_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/cli/cmd"
	"github.com/devantler-tech/kubecd/pkg/cli/output"
	"github.com/devantler-tech/kubecd/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/kubecd/pkg/cmd/runner"
	"github.com/devantler-tech/kubecd/pkg/di"
	kubecdconfigmanager "github.com/devantler-tech/kubecd/pkg/io/config-manager/kubecd"
	"github.com/devantler-tech/kubecd/pkg/svc/provider"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configPath = "/work/kubecd.yaml"

const environmentsFile = `apiVersion: kubecd.io/v1alpha1
kind: Config
clusters:
  - name: prod
    provider:
      gke:
        project: gcp-project
        clusterName: gke-cluster
        zone: us-central1-a
  - name: regional
    provider:
      gke:
        project: gcp-project
        clusterName: gke-regional
        region: us-central1
  - name: staging
    provider:
      aks:
        resourceGroup: rg
        clusterName: aks-cluster
  - name: local
    provider:
      minikube: {}
  - name: broken
    provider:
      gke:
        project: p
        clusterName: c
environments:
  - name: production
    clusterName: prod
    kubeNamespace: web
  - name: eu
    clusterName: regional
  - name: staging
    clusterName: staging
  - name: dev
    clusterName: local
  - name: bad
    clusterName: broken
`

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func newRoot(t *testing.T) *cobra.Command {
	t.Helper()

	return newRootWithConfig(t, environmentsFile)
}

func newRootWithConfig(t *testing.T, content string) *cobra.Command {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, configPath, []byte(content), 0o600))

	return cmd.NewRootCmd("1.2.3", "abc123", "2026-01-02",
		di.OverrideConfigManagerFactory(func(writer io.Writer) *kubecdconfigmanager.ConfigManager {
			return kubecdconfigmanager.NewConfigManager(writer, kubecdconfigmanager.WithFs(fs))
		}),
	)
}

func run(t *testing.T, args ...string) (runner.CommandResult, error) {
	t.Helper()

	return runner.NewCobraCommandRunner(nil, nil).Run(
		context.Background(), newRoot(t), append([]string{"--config", configPath}, args...)...,
	)
}

func TestNewRootCmd_VersionFormatting(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("1.2.3", "abc123", "2026-01-02")

	assert.Equal(t, "1.2.3 (Built on 2026-01-02 from Git SHA abc123)", root.Version)
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("", "", "")

	for _, path := range [][]string{{"init"}, {"cluster", "list"}, {"environment", "list"}, {"schema"}} {
		found, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestInit_SingleEnvironment(t *testing.T) {
	t.Parallel()

	res, err := run(t, "init", "production")
	require.NoError(t, err)

	snaps.MatchSnapshot(t, res.Stdout)
}

func TestInit_MultipleEnvironmentsKeepConfigOrder(t *testing.T) {
	t.Parallel()

	res, err := run(t, "init", "dev", "eu", "staging", "--cluster-only")
	require.NoError(t, err)

	snaps.MatchSnapshot(t, res.Stdout)
}

func TestInit_JSON(t *testing.T) {
	t.Parallel()

	res, err := run(t, "init", "eu", "-o", "json")
	require.NoError(t, err)

	var sets []output.CommandSet

	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &sets))
	assert.Equal(t, []output.CommandSet{{
		Environment: "eu",
		Commands: [][]string{
			{
				"gcloud", "container", "clusters", "get-credentials",
				"--project", "gcp-project", "--region", "us-central1", "gke-regional",
			},
			{
				"kubectl", "config", "set-context", "env:eu",
				"--cluster", "gke_gcp-project_us-central1_gke-regional",
				"--user", "gke_gcp-project_us-central1_gke-regional",
				"--namespace", "default",
			},
		},
	}}, sets)
}

func TestInit_UseContext(t *testing.T) {
	t.Parallel()

	res, err := run(t, "init", "dev", "--use-context", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "- use-context\n")
	assert.Contains(t, res.Stdout, "- env:dev\n")

	_, err = run(t, "init", "dev", "staging", "--use-context")
	require.ErrorIs(t, err, cmd.ErrUseContextNeedsOneEnvironment)

	res, err = run(t, "init", "dev", "--use-context", "--cluster-only")
	require.ErrorIs(t, err, cmd.ErrUseContextWithClusterOnly)
	assert.Empty(t, res.Stdout)
}

func TestInit_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		target   error
		exitCode int
	}{
		{name: "no selection", args: []string{"init"}, target: cmd.ErrNoEnvironmentsSelected, exitCode: errorhandler.ExitError},
		{name: "unknown environment", args: []string{"init", "nope"}, target: v1alpha1.ErrUnknownEnvironment, exitCode: errorhandler.ExitConfig},
		{name: "gke without location", args: []string{"init", "bad"}, target: provider.ErrProviderConfig, exitCode: errorhandler.ExitConfig},
		{name: "all includes broken cluster", args: []string{"init", "--all"}, target: provider.ErrProviderConfig, exitCode: errorhandler.ExitConfig},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := run(t, testCase.args...)
			require.ErrorIs(t, err, testCase.target)
			assert.Equal(t, testCase.exitCode, errorhandler.ExitCode(err))
		})
	}
}

func TestInit_InvalidOutputFormat(t *testing.T) {
	t.Parallel()

	_, err := run(t, "init", "dev", "-o", "xml")
	require.ErrorContains(t, err, "invalid output format")
}

func TestInit_ProviderConfigErrorNamesCluster(t *testing.T) {
	t.Parallel()

	_, err := run(t, "init", "bad")

	var configErr *provider.ProviderConfigError

	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "broken", configErr.Cluster)
	assert.Equal(t, v1alpha1.ProviderKindGKE, configErr.Provider)
}

func TestClusterList(t *testing.T) {
	t.Parallel()

	res, err := run(t, "cluster", "list")
	require.NoError(t, err)

	assert.Regexp(t, `prod\s+GKE\s+gke_gcp-project_us-central1-a_gke-cluster\s+gke_gcp-project_us-central1-a_gke-cluster`, res.Stdout)
	assert.Regexp(t, `staging\s+AKS\s+aks-cluster\s+clusterUser_rg_aks-cluster`, res.Stdout)
	assert.Regexp(t, `local\s+Minikube\s+minikube\s+minikube`, res.Stdout)
	assert.Regexp(t, `broken\s+GKE\s+-\s+-`, res.Stdout)
}

func TestInit_ExistingContextFromKubeconfigFlag(t *testing.T) {
	t.Parallel()

	kubeconfig := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(kubeconfig, []byte(`apiVersion: v1
kind: Config
clusters:
  - name: shared-cluster
    cluster:
      server: https://127.0.0.1:6443
users:
  - name: shared-user
    user:
      token: secret
contexts:
  - name: shared
    context:
      cluster: shared-cluster
      user: shared-user
current-context: shared
`), 0o600))

	root := newRootWithConfig(t, `clusters:
  - name: shared
    provider:
      existingContext:
        contextName: shared
environments:
  - name: qa
    clusterName: shared
    kubeNamespace: qa
`)

	res, err := runner.NewCobraCommandRunner(nil, nil).Run(context.Background(), root,
		"--config", configPath, "--kubeconfig", kubeconfig, "init", "qa")
	require.NoError(t, err)

	assert.Equal(t,
		"# qa\nkubectl config set-context env:qa --cluster shared-cluster --user shared-user --namespace qa\n",
		res.Stdout,
	)
}

func TestEnvironmentList(t *testing.T) {
	t.Parallel()

	res, err := run(t, "environments", "list")
	require.NoError(t, err)

	assert.Regexp(t, `production\s+prod\s+web\s+env:production`, res.Stdout)
	assert.Regexp(t, `dev\s+local\s+default\s+env:dev`, res.Stdout)
}

func TestListCommands_MissingConfig(t *testing.T) {
	t.Parallel()

	_, err := runner.NewCobraCommandRunner(nil, nil).Run(
		context.Background(), newRoot(t), "cluster", "list", "--config", "/nowhere.yaml",
	)
	require.ErrorIs(t, err, kubecdconfigmanager.ErrConfigNotFound)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		res, err := runner.NewCobraCommandRunner(nil, nil).Run(context.Background(), cmd.NewSchemaCmd())
		require.NoError(t, err)

		var doc map[string]any

		require.NoError(t, json.Unmarshal([]byte(res.Stdout), &doc))
		assert.Equal(t, "kubecd Configuration", doc["title"])
	})

	t.Run("openapi", func(t *testing.T) {
		t.Parallel()

		res, err := runner.NewCobraCommandRunner(nil, nil).Run(context.Background(), cmd.NewSchemaCmd(), "--openapi")
		require.NoError(t, err)

		assert.Contains(t, res.Stdout, "title: kubecd Configuration\n")
		assert.NotContains(t, res.Stdout, "$schema")
		assert.Contains(t, res.Stdout, "oneOf:")
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()

		res, err := runner.NewCobraCommandRunner(nil, nil).Run(
			context.Background(), cmd.NewSchemaCmdWithFs(fs), "/schemas/kubecd.schema.json",
		)
		require.NoError(t, err)
		assert.Contains(t, res.Stdout, "schema written to /schemas/kubecd.schema.json")

		exists, err := afero.Exists(fs, "/schemas/kubecd.schema.json")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestExecute_WrapsCommandError(t *testing.T) {
	t.Parallel()

	root := newRoot(t)
	root.SetOut(io.Discard)
	root.SetArgs([]string{"init", "nope", "--config", configPath})

	err := cmd.Execute(context.Background(), root)
	require.ErrorIs(t, err, v1alpha1.ErrUnknownEnvironment)
	assert.Contains(t, err.Error(), "command execution failed")
}

package parallel_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	"github.com/devantler-tech/kubecd/pkg/cli/parallel"
	"github.com/devantler-tech/kubecd/pkg/svc/providerresolver"
)

// BenchmarkMap_EnvironmentInitCommands measures generating init commands for a
// config with many environments at different concurrency limits.
func BenchmarkMap_EnvironmentInitCommands(b *testing.B) {
	cfg := v1alpha1.NewConfig()

	for i := range 50 {
		cluster := v1alpha1.NewGKEZonalCluster(fmt.Sprintf("c%d", i), "project", "cluster", "europe-west1-b")
		cfg.Clusters = append(cfg.Clusters, cluster)
		cfg.Environments = append(cfg.Environments, v1alpha1.Environment{
			Name:        fmt.Sprintf("e%d", i),
			ClusterName: cluster.Name,
		})
	}

	envs := make([]*v1alpha1.Environment, len(cfg.Environments))
	for i := range cfg.Environments {
		envs[i] = &cfg.Environments[i]
	}

	resolver := providerresolver.Default()

	for _, limit := range []int64{1, 4, 8} {
		b.Run(fmt.Sprintf("concurrency=%d", limit), func(b *testing.B) {
			executor := parallel.NewExecutor(limit)

			for b.Loop() {
				_, _ = parallel.Map(context.Background(), executor, envs,
					func(_ context.Context, env *v1alpha1.Environment) ([][]string, error) {
						return resolver.EnvironmentInitCommands(cfg, env)
					})
			}
		})
	}
}

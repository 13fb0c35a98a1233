package parallel_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devantler-tech/kubecd/pkg/cli/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTask = errors.New("task failed")

func TestNewExecutor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(3), parallel.NewExecutor(3).MaxConcurrency())
	assert.Equal(t, parallel.DefaultMaxConcurrency(), parallel.NewExecutor(0).MaxConcurrency())

	def := parallel.DefaultMaxConcurrency()
	assert.GreaterOrEqual(t, def, int64(2))
	assert.LessOrEqual(t, def, int64(8))
}

func TestExecutor_Execute(t *testing.T) {
	t.Parallel()

	t.Run("no tasks", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, parallel.NewExecutor(2).Execute(context.Background()))
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var running, peak atomic.Int64

		task := func(context.Context) error {
			current := running.Add(1)
			for {
				observed := peak.Load()
				if current <= observed || peak.CompareAndSwap(observed, current) {
					break
				}
			}

			time.Sleep(5 * time.Millisecond)
			running.Add(-1)

			return nil
		}

		tasks := make([]parallel.Task, 10)
		for i := range tasks {
			tasks[i] = task
		}

		require.NoError(t, parallel.NewExecutor(2).Execute(context.Background(), tasks...))
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("returns task error", func(t *testing.T) {
		t.Parallel()

		err := parallel.NewExecutor(2).Execute(context.Background(),
			func(context.Context) error { return nil },
			func(context.Context) error { return errTask },
		)

		require.ErrorIs(t, err, errTask)
		assert.Contains(t, err.Error(), "parallel execution")
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("keeps input order", func(t *testing.T) {
		t.Parallel()

		items := []int{5, 1, 4, 2, 3}

		results, err := parallel.Map(context.Background(), parallel.NewExecutor(4), items,
			func(_ context.Context, item int) (string, error) {
				time.Sleep(time.Duration(item) * time.Millisecond)

				return strconv.Itoa(item), nil
			})

		require.NoError(t, err)
		assert.Equal(t, []string{"5", "1", "4", "2", "3"}, results)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		results, err := parallel.Map(context.Background(), parallel.NewExecutor(1), []int{},
			func(context.Context, int) (int, error) { return 0, nil })

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("error discards results", func(t *testing.T) {
		t.Parallel()

		results, err := parallel.Map(context.Background(), parallel.NewExecutor(2), []int{1, 2},
			func(_ context.Context, item int) (int, error) {
				if item == 2 {
					return 0, errTask
				}

				return item, nil
			})

		require.ErrorIs(t, err, errTask)
		assert.Nil(t, results)
	})
}

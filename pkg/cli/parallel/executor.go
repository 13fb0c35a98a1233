// Package parallel runs independent generation tasks with bounded concurrency.
package parallel

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	minConcurrency    = 2
	maxConcurrencyCap = 8
)

// DefaultMaxConcurrency returns the number of CPUs clamped to [2, 8].
func DefaultMaxConcurrency() int64 {
	return min(max(int64(runtime.NumCPU()), minConcurrency), maxConcurrencyCap)
}

// Executor runs tasks concurrently with at most maxConcurrency in flight.
type Executor struct {
	maxConcurrency int64
}

// NewExecutor creates an Executor. A maxConcurrency <= 0 selects DefaultMaxConcurrency.
func NewExecutor(maxConcurrency int64) *Executor {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency()
	}

	return &Executor{maxConcurrency: maxConcurrency}
}

// MaxConcurrency reports the concurrency limit.
func (executor *Executor) MaxConcurrency() int64 {
	return executor.maxConcurrency
}

// Task is a unit of work run by Execute.
type Task func(ctx context.Context) error

// Execute runs all tasks and returns the first error, canceling the context passed
// to the remaining tasks.
func (executor *Executor) Execute(ctx context.Context, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}

	sem := semaphore.NewWeighted(executor.maxConcurrency)
	group, groupCtx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		group.Go(func() error {
			err := sem.Acquire(groupCtx, 1)
			if err != nil {
				return fmt.Errorf("acquire semaphore: %w", err)
			}

			defer sem.Release(1)

			return task(groupCtx)
		})
	}

	err := group.Wait()
	if err != nil {
		return fmt.Errorf("parallel execution: %w", err)
	}

	return nil
}

// Map applies fn to every item concurrently and returns the results in input order.
// The first error aborts the run.
func Map[T, R any](
	ctx context.Context,
	executor *Executor,
	items []T,
	fn func(ctx context.Context, item T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	tasks := make([]Task, len(items))

	for index, item := range items {
		tasks[index] = func(ctx context.Context) error {
			result, err := fn(ctx, item)
			if err != nil {
				return err
			}

			results[index] = result

			return nil
		}
	}

	err := executor.Execute(ctx, tasks...)
	if err != nil {
		return nil, err
	}

	return results, nil
}

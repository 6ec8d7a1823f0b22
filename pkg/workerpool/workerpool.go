// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

type job[T any] struct {
	index int
	item  T
}

// Process runs workerCount workers over items, invoking process with each
// item and its position. The first error cancels the context, stops further
// work and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(ctx context.Context, index int, item T) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job[T], workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					if err := process(ctx, j.index, j.item); err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, item := range items {
			select {
			case <-ctx.Done():
				return
			case jobs <- job[T]{index: i, item: item}:
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return ctx.Err()
}

// Map applies fn to every item concurrently and returns the results in
// input order. It fails with the first error fn returns.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(ctx context.Context, item T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	err := Process(ctx, workerCount, items, func(ctx context.Context, index int, item T) error {
		r, err := fn(ctx, item)
		if err != nil {
			return err
		}
		results[index] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

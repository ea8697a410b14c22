// Package workerpool runs bounded fan-out over slices.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process calls fn for every item on at most workerCount goroutines. The first
// error cancels the context handed to the remaining calls and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(clampWorkers(workerCount, len(items)))
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, item)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map is Process with one result per item, returned in item order.
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}
	err := Process(ctx, workerCount, indexes, func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		results[i] = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Chunk splits items into consecutive slices of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 1
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks
}

func clampWorkers(workers, items int) int {
	return max(1, min(workers, items))
}

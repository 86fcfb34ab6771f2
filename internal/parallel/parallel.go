// Package parallel splits index ranges into chunks and runs them on worker goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, n) into parts contiguous ranges. Every range has
// n/parts elements except the last, which also takes the remainder.
// parts is clamped to [1, max(n, 1)].
func Partition(n, parts int) []Range {
	parts = max(1, min(parts, max(n, 1)))
	chunk := n / parts

	ranges := make([]Range, parts)
	for i := range ranges {
		start := i * chunk
		end := start + chunk
		if i == parts-1 {
			end = n
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForRanges calls f(ctx, i, ranges[i]) for every range and returns the first error.
//
// With parallelism enabled each range runs on its own goroutine, at most
// cfg.NumWorkers at a time, and the first failure cancels ctx for the rest.
// Otherwise ranges run in order and stop at the first error.
func ForRanges(ctx context.Context, ranges []Range, f func(ctx context.Context, i int, r Range) error, cfg Config) error {
	if !cfg.Enabled || len(ranges) < 2 {
		for i, r := range ranges {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(ctx, i, r); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.NumWorkers > 0 {
		g.SetLimit(cfg.NumWorkers)
	}
	for i, r := range ranges {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(gctx, i, r)
		})
	}
	return g.Wait()
}

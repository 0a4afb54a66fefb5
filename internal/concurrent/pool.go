// Package concurrent runs independent batch work across a bounded
// worker pool. Scoring thousands of events is embarrassingly
// parallel; the pool keeps it off a single core without each caller
// rebuilding the same goroutine scaffolding.
package concurrent

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool bounds parallelism for index-addressed batch work.
type Pool struct {
	// Workers caps concurrent goroutines. Zero means NumCPU.
	Workers int

	// Progress, when set, is called after each completed item with
	// (done, total). Calls may arrive from any worker.
	Progress func(done, total int)
}

// Each invokes fn for every index in [0, n) across the pool. The
// first error cancels remaining work and is returned. Workers own
// disjoint indices, so fn may mutate the item at its index without
// synchronization.
func (p Pool) Each(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	indices := make(chan int)
	errs := make(chan error, 1)
	var done atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				if err := fn(i); err != nil {
					select {
					case errs <- err:
						cancel()
					default:
					}
					return
				}
				if p.Progress != nil {
					p.Progress(int(done.Add(1)), n)
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case indices <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indices)
	wg.Wait()

	select {
	case err := <-errs:
		return err
	default:
	}
	return ctx.Err()
}

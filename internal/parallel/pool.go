// Package parallel runs independent, indexed work items on a bounded set of
// goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs indexed work items on at most a fixed number of goroutines.
//
// Thread safety: Pool is safe for concurrent use; each ForEach call starts
// its own workers.
type Pool struct {
	workers int
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach calls fn(i) for every i in [0, n) and waits for all calls to
// return. Every item runs even when some fail; the returned error is the
// one from the lowest failing index, so the result does not depend on
// scheduling.
func (p *Pool) ForEach(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	errs := make([]error, n)
	if p.workers == 1 {
		for i := 0; i < n; i++ {
			errs[i] = fn(i)
		}
		return firstError(errs)
	}

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			errs[i] = fn(i)
			return nil
		})
	}
	_ = g.Wait()

	return firstError(errs)
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

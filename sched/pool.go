// Package sched provides the persistent worker pool and task-partitioning
// helpers the kernel package uses to parallelize mxm, ewise, reduce, apply,
// select, and transpose.
//
// What & Why:
//
//	A Pool is created once per engine (plus one per narrowed thread budget)
//	and reused across every operation dispatched through it, avoiding the per-call goroutine-spawn
//	cost that would otherwise dominate small-matrix kernels. Workers are
//	long-lived and park on a buffered channel between jobs.
package sched

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool shared by every kernel invocation made
// through the engine that owns it. Workers are spawned once at New and
// persist until Close.
type Pool struct {
	numWorkers int
	workC      chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

type job struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a worker pool with the given worker count. A count <= 0 uses
// runtime.GOMAXPROCS(0).
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan job, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for j := range p.workC {
		j.fn()
		j.barrier.Done()
	}
}

// NumWorkers reports the pool's worker count.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down; pending work still completes first. Safe to
// call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor statically partitions [0, n) into NumWorkers contiguous
// chunks and runs fn(start, end) once per chunk, blocking until all
// complete. Used by the Gustavson mxm algorithm, whose per-row workspace
// cost is uniform enough that static partitioning balances load well (see
// kernel.MxMGustavson).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- job{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomic distributes [0, n) across workers one index at a time
// via an atomic counter, giving better load balance than ParallelFor when
// per-index cost varies widely. Used by the dot-product mxm algorithm,
// where the cost of intersecting two sparse vectors depends on their
// individual nonzero counts (see kernel.MxMDotProduct).
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- job{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomicBatched is ParallelForAtomic with work grabbed in
// batchSize chunks per atomic operation, amortizing the counter's
// contention cost when individual items are cheap.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- job{
			fn: func() {
				for {
					batch := int(nextBatch.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					end := min(start+batchSize, n)
					fn(start, end)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// SPDX-License-Identifier: MIT

package grb

import (
	"sync"

	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/sched"
)

// Engine owns the resources an operation needs to run: the worker pool of
// spec §5 and the Sauna pool of spec §4.3/§9. The Sauna pool (kernel.Pool)
// is keyed by workspace shape (inner size, value size), not by thread id,
// and its Acquire never blocks: when no free Sauna of the requested shape
// exists it allocates a new one. One Engine is shared across many
// concurrent operations, exactly as a single *sched.Pool and *kernel.Pool
// are shared by every orchestrator call in package ops.
type Engine struct {
	pool   *sched.Pool
	saunas *kernel.Pool

	mu     sync.Mutex
	scoped map[int]*sched.Pool
}

// NewEngine builds an Engine with nthreads workers. nthreads <= 0 asks the
// pool for its own default (every available core).
func NewEngine(nthreads int) *Engine {
	return &Engine{pool: sched.New(nthreads), saunas: kernel.NewPool(), scoped: make(map[int]*sched.Pool)}
}

// Close releases the Engine's worker pool, along with every scoped pool
// planPool created for a narrowed Context.WithNThreads budget. It is not
// safe to start new operations against an Engine after Close; in-flight
// operations may still complete since Pool.Close falls back to sequential
// execution rather than aborting running work.
func (e *Engine) Close() {
	e.pool.Close()

	e.mu.Lock()
	for _, p := range e.scoped {
		p.Close()
	}
	e.scoped = nil
	e.mu.Unlock()
}

// NumWorkers reports the Engine's base worker-pool size.
func (e *Engine) NumWorkers() int { return e.pool.NumWorkers() }

// planPool returns the *sched.Pool an operation against ctx should run on:
// the Engine's base pool, unless ctx.WithNThreads narrowed the budget, in
// which case a pool of that size is returned. Scoped pools are created once
// per distinct worker count and cached for the Engine's lifetime (closed
// alongside the base pool by Close), so repeated calls against the same
// narrowed Context do not spin up a fresh set of worker goroutines every
// time.
func (e *Engine) planPool(ctx Context) *sched.Pool {
	if ctx.nthreads <= 0 || ctx.nthreads >= e.pool.NumWorkers() {
		return e.pool
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if p, ok := e.scoped[ctx.nthreads]; ok {
		return p
	}
	p := sched.New(ctx.nthreads)
	e.scoped[ctx.nthreads] = p
	return p
}

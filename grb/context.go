// SPDX-License-Identifier: MIT

package grb

import "context"

// Context carries cancellation and a thread budget across the engine's
// public operation boundary (spec §5: "the public operation boundary
// supports a Context that may carry a cancellation signal; kernels poll it
// at task boundaries only"). There is no per-element polling and no
// timeout support in the core; a Context's deadline, if any, is enforced
// by whatever produced its context.Context (e.g. context.WithTimeout),
// not by this package.
type Context struct {
	ctx      context.Context
	nthreads int
}

// Background returns a Context with no cancellation and the default thread
// budget (every available worker in the pool an operation runs against).
func Background() Context {
	return Context{ctx: context.Background()}
}

// WithContext wraps an existing context.Context, carrying its cancellation
// signal into every operation run against this Context.
func WithContext(ctx context.Context) Context {
	return Context{ctx: ctx}
}

// WithNThreads caps the worker count an operation run against this Context
// requests from its Engine's pool; n <= 0 leaves the pool's own worker
// count in force.
func (c Context) WithNThreads(n int) Context {
	c.nthreads = n
	return c
}

// checkCanceled reports ErrCanceled if the wrapped context.Context has been
// canceled or its deadline exceeded; called once at an operation's entry,
// before any allocation (spec §7's "type and dimension mismatches are
// detected at the orchestrator entry before any allocation" extends to
// cancellation too).
func (c Context) checkCanceled() error {
	if c.ctx == nil {
		return nil
	}
	if err := c.ctx.Err(); err != nil {
		return grbErrorf("checkCanceled", ErrCanceled)
	}
	return nil
}

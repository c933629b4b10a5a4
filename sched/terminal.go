package sched

import "sync/atomic"

// Terminal is a shared early-exit flag for parallel monoid reduction
// (spec §4.4). Once any worker reaches a monoid's terminal value, it calls
// Trip; other workers poll Tripped between inner blocks of work, never per
// element, so the flag check never dominates the cost of cheap element
// operations.
type Terminal struct {
	flag atomic.Bool
}

// Trip sets the flag. Safe to call from multiple goroutines; idempotent.
func (t *Terminal) Trip() {
	t.flag.Store(true)
}

// Tripped reports whether any worker has called Trip.
func (t *Terminal) Tripped() bool {
	return t.flag.Load()
}

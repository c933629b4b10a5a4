package kernel

import (
	"sync/atomic"
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/dispatch"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// Reduce computes s = monoid-fold over every live value of A (spec §4.5).
// A must already be materialized (EnsureReady) and read-locked by the
// caller. Cast, if non-nil, converts each A value (A.Code()-typed) into
// zsize-byte ztype-typed bytes before folding; pass nil when A.Code()
// already equals the monoid's operand type.
//
// early, if non-nil, is shared with sibling Reduce calls (e.g. a caller
// folding several matrices' worth of a larger reduction); once any task's
// running value equals monoid.Terminal, early.Trip() is called and every
// task still in flight stops at its next between-blocks check (spec §5).
func Reduce(pool *sched.Pool, monoid algebra.Monoid, A *sparse.Matrix, cast algebra.CastFunc, early *sched.Terminal) ([]byte, error) {
	if early == nil {
		early = &sched.Terminal{}
	}

	nz := int(A.NVec()) // iterate per populated vector; cheap to flatten further below
	total := 0
	bounds := make([][2]int64, nz)
	for s := 0; s < nz; s++ {
		start, end := A.VecBounds(s)
		bounds[s] = [2]int64{start, end}
		total += int(end - start)
	}

	if total == 0 {
		out := make([]byte, len(monoid.Identity))
		copy(out, monoid.Identity)
		return out, nil
	}

	plan := sched.PlanWork(total, pool.NumWorkers(), 0)

	// Flatten (slot, offset-within-slot) into one linear position space so
	// ParallelForAtomicBatched's contiguous [start,end) ranges can cut across
	// vector boundaries without the caller needing to know vector lengths.
	positions := make([]int64, 0, total)
	for s := 0; s < nz; s++ {
		start, end := bounds[s][0], bounds[s][1]
		for pos := start; pos < end; pos++ {
			positions = append(positions, pos)
		}
	}

	batch := max(1, total/plan.Ntasks)
	numBatches := (total + batch - 1) / batch
	partials := make([][]byte, numBatches)
	var nextSlot atomic.Int64

	pool.ParallelForAtomicBatched(total, batch, func(start, end int) {
		tid := int(nextSlot.Add(1)) - 1
		if tid >= len(partials) {
			tid = len(partials) - 1
		}

		w := make([]byte, len(monoid.Identity))
		copy(w, monoid.Identity)

		for idx := start; idx < end; idx++ {
			if idx%256 == 0 && early.Tripped() {
				break
			}

			pos := positions[idx]
			v := A.ValueAt(pos)

			if cast != nil {
				tmp := make([]byte, len(w))
				cast(tmp, v)
				v = tmp
			}

			accumulateMonoid(monoid, w, v)

			if monoid.HasTerminal && bytesEqual(w, monoid.Terminal) {
				early.Trip()
				break
			}
		}

		partials[tid] = w
	})

	s := make([]byte, len(monoid.Identity))
	copy(s, monoid.Identity)
	for _, w := range partials {
		if w == nil {
			continue
		}
		accumulateMonoid(monoid, s, w)
	}

	return s, nil
}

// accumulateMonoid computes dst = monoid.Op(dst, src) via the byte-level
// Apply function, with a typed fast path for float64/float32 operands
// (dispatch.TryBinary), matching the same two-tier shape as MAdd.
func accumulateMonoid(monoid algebra.Monoid, dst, src []byte) {
	if fn, ok := dispatch.TryBinary[float64](monoid.Op); ok && len(dst) == 8 {
		d := (*float64)(unsafe.Pointer(&dst[0]))
		*d = fn(*d, *(*float64)(unsafe.Pointer(&src[0])))
		return
	}
	if fn, ok := dispatch.TryBinary[float32](monoid.Op); ok && len(dst) == 4 {
		d := (*float32)(unsafe.Pointer(&dst[0]))
		*d = fn(*d, *(*float32)(unsafe.Pointer(&src[0])))
		return
	}

	monoid.Op.Apply(unsafe.Pointer(&dst[0]), unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]))
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

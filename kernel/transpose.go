package kernel

import (
	"sync/atomic"

	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// Transpose computes T = A' by the two-phase method of spec §4.6: phase 1
// counts how many entries land in each output vector (every entry of A's
// inner dimension becomes one output vector), turning those counts into the
// output's Cp by prefix sum; phase 2 bucket-scatters each entry of A to its
// transposed position, with each worker owning a disjoint, already-known
// write range per output vector so no synchronization is needed beyond a
// per-vector atomic write cursor. A must already be materialized and
// read-locked by the caller.
//
// T is produced in A's own orientation (a ByCol matrix transposes to a
// ByCol matrix whose columns are A's former rows), which is what makes this
// a pure index transform: package ops decides whether the caller actually
// wanted a storage-orientation flip instead, which needs no data movement
// at all.
func Transpose(pool *sched.Pool, A *sparse.Matrix) (sparse.CSXBuild, error) {
	vecDim, otherDim := A.Dims()
	nvec := int(A.NVec())
	valSize := A.ValSize()

	counts := make([]int64, otherDim)
	for s := 0; s < nvec; s++ {
		start, end := A.VecBounds(s)
		for pos := start; pos < end; pos++ {
			counts[A.Inner(pos)]++
		}
	}

	cp := make([]int64, otherDim+1)
	for k := int64(0); k < otherDim; k++ {
		cp[k+1] = cp[k] + counts[k]
	}
	total := cp[otherDim]

	ci := make([]int64, total)
	cx := make([]byte, total*int64(valSize))

	cursors := make([]atomic.Int64, otherDim)
	for k := int64(0); k < otherDim; k++ {
		cursors[k].Store(cp[k])
	}

	pool.ParallelForAtomic(nvec, func(s int) {
		vecIdx := A.VecIndex(s)
		start, end := A.VecBounds(s)

		for pos := start; pos < end; pos++ {
			inner := A.Inner(pos)
			slot := cursors[inner].Add(1) - 1

			ci[slot] = vecIdx
			copy(cx[slot*int64(valSize):(slot+1)*int64(valSize)], A.ValueAt(pos))
		}
	})

	// Each output vector's entries were written in whatever order the
	// producing goroutines happened to claim slots, not necessarily
	// increasing inner-index order; restore that invariant per vector.
	for k := int64(0); k < otherDim; k++ {
		lo, hi := cp[k], cp[k+1]
		insertionSortByIndex(ci, cx, lo, hi, valSize)
	}

	nrows, ncols := vecDim, otherDim
	if A.Orient() == sparse.ByRow {
		nrows, ncols = otherDim, vecDim
	}

	return sparse.CSXBuild{
		Nrows: nrows, Ncols: ncols, Orient: A.Orient(), Code: A.Code(),
		P: cp, I: ci, X: cx,
	}, nil
}

// insertionSortByIndex sorts the [lo, hi) slice of (ci, cx) pairs by ci in
// place. Each output vector typically holds as many entries as A's own
// average vector degree, so insertion sort's O(n^2) worst case never
// dominates in practice, matching the same assumption the rest of this
// package makes about per-vector degree.
func insertionSortByIndex(ci []int64, cx []byte, lo, hi int64, valSize int) {
	tmp := make([]byte, valSize)
	for k := lo + 1; k < hi; k++ {
		j := k
		for j > lo && ci[j-1] > ci[j] {
			ci[j-1], ci[j] = ci[j], ci[j-1]
			copy(tmp, cx[(j-1)*int64(valSize):j*int64(valSize)])
			copy(cx[(j-1)*int64(valSize):j*int64(valSize)], cx[j*int64(valSize):(j+1)*int64(valSize)])
			copy(cx[j*int64(valSize):(j+1)*int64(valSize)], tmp)
			j--
		}
	}
}

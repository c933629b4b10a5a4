package kernel

import (
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// EWiseAdd computes the set-union element-wise combination of spec §4.4:
// T(i,j) = op(A,B) on the intersection, =A where only A is present, =B
// where only B is present. A and B must share orientation (the caller,
// package ops, is responsible for aligning them); T is produced in that
// same orientation.
func EWiseAdd(pool *sched.Pool, op *algebra.BinaryOp, A, B *sparse.Matrix, mask Mask) (sparse.CSXBuild, error) {
	return ewise(pool, op, A, B, mask, true)
}

// EWiseMult computes the set-intersection combination of spec §4.4: T(i,j)
// = op(A,B) only where both A and B are present.
func EWiseMult(pool *sched.Pool, op *algebra.BinaryOp, A, B *sparse.Matrix, mask Mask) (sparse.CSXBuild, error) {
	return ewise(pool, op, A, B, mask, false)
}

func ewise(pool *sched.Pool, op *algebra.BinaryOp, A, B *sparse.Matrix, mask Mask, union bool) (sparse.CSXBuild, error) {
	nvecDim, otherDim := A.Dims()
	zsize := op.ZCode.Size()

	results := make([]colResult, nvecDim)
	nA := int(A.NVec())
	nBvec := int(B.NVec())

	// present tracks which outer-vector indices appear in either operand, so
	// hypersparse inputs still produce every populated output vector even
	// when a given vector is populated in only one of A or B.
	present := make(map[int64]bool, nA+nBvec)
	for s := 0; s < nA; s++ {
		present[A.VecIndex(s)] = true
	}
	if union {
		for s := 0; s < nBvec; s++ {
			present[B.VecIndex(s)] = true
		}
	}
	// Intersection only ever needs vectors present in A (a vector absent
	// from A contributes nothing), so present already has the right set.

	vecs := make([]int64, 0, len(present))
	for v := range present {
		vecs = append(vecs, v)
	}

	pool.ParallelForAtomic(len(vecs), func(idx int) {
		vecIdx := vecs[idx]

		var aStart, aEnd, bStart, bEnd int64
		if slotA, found := A.FindSlot(vecIdx); found {
			aStart, aEnd = A.VecBounds(slotA)
		}
		if slotB, found := B.FindSlot(vecIdx); found {
			bStart, bEnd = B.VecBounds(slotB)
		}

		var vm VectorMask
		if mask.Present() {
			vm = mask.VectorLookup(vecIdx)
		}

		var ci []int64
		var cx []byte
		ap, bp := aStart, bStart

		emit := func(i int64, val []byte) {
			if mask.Present() && !vm.Admits(i) {
				return
			}
			ci = append(ci, i)
			cx = append(cx, val...)
		}

		for ap < aEnd && bp < bEnd {
			ai := A.Inner(ap)
			bi := B.Inner(bp)

			switch {
			case ai < bi:
				if union {
					emit(ai, A.ValueAt(ap))
				}
				ap++
			case ai > bi:
				if union {
					emit(bi, B.ValueAt(bp))
				}
				bp++
			default:
				out := make([]byte, zsize)
				op.Apply(unsafe.Pointer(&out[0]), unsafe.Pointer(&A.ValueAt(ap)[0]), unsafe.Pointer(&B.ValueAt(bp)[0]))
				emit(ai, out)
				ap++
				bp++
			}
		}

		if union {
			for ap < aEnd {
				emit(A.Inner(ap), A.ValueAt(ap))
				ap++
			}
			for bp < bEnd {
				emit(B.Inner(bp), B.ValueAt(bp))
				bp++
			}
		}

		results[vecIdx] = colResult{idx: ci, val: cx}
	})

	return concatColumnsOriented(otherDim, nvecDim, A.Orient(), op.ZCode, results)
}

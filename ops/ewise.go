package ops

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// EwiseAdd computes C<M> = accum(C, A op B) via set-union semantics (spec
// §4.4), mutating C in place.
func EwiseAdd(pool *sched.Pool, C, M *sparse.Matrix, accum *algebra.BinaryOp, op *algebra.BinaryOp, A, B *sparse.Matrix, opts ...Option) error {
	return ewise(pool, C, M, accum, op, A, B, true, opts...)
}

// EwiseMult computes C<M> = accum(C, A op B) via set-intersection semantics
// (spec §4.4), mutating C in place.
func EwiseMult(pool *sched.Pool, C, M *sparse.Matrix, accum *algebra.BinaryOp, op *algebra.BinaryOp, A, B *sparse.Matrix, opts ...Option) error {
	return ewise(pool, C, M, accum, op, A, B, false, opts...)
}

func ewise(pool *sched.Pool, C, M *sparse.Matrix, accum *algebra.BinaryOp, op *algebra.BinaryOp, A, B *sparse.Matrix, union bool, opts ...Option) error {
	desc := NewDescriptor(opts...)

	if err := A.EnsureReady(); err != nil {
		return err
	}
	if err := B.EnsureReady(); err != nil {
		return err
	}

	if desc.TransposeInput0 {
		var err error
		A, err = transposeOf(pool, A)
		if err != nil {
			return err
		}
	}
	if desc.TransposeInput1 {
		var err error
		B, err = transposeOf(pool, B)
		if err != nil {
			return err
		}
	}

	if A.Nrows() != B.Nrows() || A.Ncols() != B.Ncols() {
		return sparse.ErrDimensionMismatch
	}
	if C.Nrows() != A.Nrows() || C.Ncols() != A.Ncols() {
		return sparse.ErrDimensionMismatch
	}

	A.RLock()
	orientA := A.Orient()
	A.RUnlock()

	Bo, err := reorient(pool, B, orientA)
	if err != nil {
		return err
	}

	mask, unmask, err := buildMask(M, desc)
	if err != nil {
		return err
	}
	defer unmask()

	A.RLock()
	Bo.RLock()
	var build sparse.CSXBuild
	if union {
		build, err = kernel.EWiseAdd(pool, op, A, Bo, mask)
	} else {
		build, err = kernel.EWiseMult(pool, op, A, Bo, mask)
	}
	Bo.RUnlock()
	A.RUnlock()
	if err != nil {
		return err
	}

	T, err := sparse.FromCSX(build)
	if err != nil {
		return err
	}

	C.RLock()
	orientC := C.Orient()
	C.RUnlock()

	T, err = reorient(pool, T, orientC)
	if err != nil {
		return err
	}

	return MergeInto(C, mask, accum, T, desc.Replace)
}

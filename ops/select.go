package ops

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// Select computes C<M> = accum(C, {entries of A admitted by selector}) per
// spec §4.6. thunk, for the comparator selectors, must already be encoded
// in A's own Code.
func Select(pool *sched.Pool, C, M *sparse.Matrix, accum *algebra.BinaryOp, selector kernel.SelectOp, thunk []byte, A *sparse.Matrix, opts ...Option) error {
	desc := NewDescriptor(opts...)

	if err := A.EnsureReady(); err != nil {
		return err
	}
	if desc.TransposeInput0 {
		var err error
		A, err = transposeOf(pool, A)
		if err != nil {
			return err
		}
	}

	if C.Nrows() != A.Nrows() || C.Ncols() != A.Ncols() {
		return sparse.ErrDimensionMismatch
	}

	mask, unmask, err := buildMask(M, desc)
	if err != nil {
		return err
	}
	defer unmask()

	A.RLock()
	build, err := kernel.Select(pool, A, selector, thunk)
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

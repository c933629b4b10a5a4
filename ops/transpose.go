package ops

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// Transpose computes C<M> = accum(C, A') per spec §4.6, mutating C.
func Transpose(pool *sched.Pool, C, M *sparse.Matrix, accum *algebra.BinaryOp, A *sparse.Matrix, opts ...Option) error {
	desc := NewDescriptor(opts...)

	if C.Nrows() != A.Ncols() || C.Ncols() != A.Nrows() {
		return sparse.ErrDimensionMismatch
	}

	mask, unmask, err := buildMask(M, desc)
	if err != nil {
		return err
	}
	defer unmask()

	T, err := transposeOf(pool, A)
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

package ops

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// Apply computes C<M> = accum(C, unary(A)) per spec §4.6, mutating C.
func Apply(pool *sched.Pool, C, M *sparse.Matrix, accum *algebra.BinaryOp, op *algebra.UnaryOp, A *sparse.Matrix, opts ...Option) error {
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
	build, err := kernel.Apply(pool, op, A)
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

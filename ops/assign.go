package ops

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// Assign writes A into the index block C(rowIndices, colIndices) — spec
// §3's "assign family", supplemented per the forGraphBLASGo assign/
// subassign shape: C(rowIndices[i], colIndices[j]) = A(i, j) for every i,j
// in range, honoring mask/accum/replace exactly like mxm's merge step. A
// must have shape (len(rowIndices), len(colIndices)).
func Assign(pool *sched.Pool, C, M *sparse.Matrix, accum *algebra.BinaryOp, A *sparse.Matrix, rowIndices, colIndices []int64, opts ...Option) error {
	desc := NewDescriptor(opts...)

	if err := A.EnsureReady(); err != nil {
		return err
	}
	if int64(len(rowIndices)) != A.Nrows() || int64(len(colIndices)) != A.Ncols() {
		return sparse.ErrDimensionMismatch
	}

	mask, unmask, err := buildMask(M, desc)
	if err != nil {
		return err
	}
	defer unmask()

	T, err := sparse.New(C.Nrows(), C.Ncols(), C.Type(), sparse.WithOrientation(C.Orientation()))
	if err != nil {
		return err
	}

	for ai, row := range rowIndices {
		for aj, col := range colIndices {
			v, ok, err := A.ExtractElement(int64(ai), int64(aj))
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := T.SetElement(row, col, v); err != nil {
				return err
			}
		}
	}
	if err := T.Wait(); err != nil {
		return err
	}

	return MergeInto(C, mask, accum, T, desc.Replace)
}

// AssignConstant broadcasts a single scalar value to every position of the
// index block C(rowIndices, colIndices), matching GrB_assign's constant-
// scalar variant. val must already be encoded in C's own Code.
func AssignConstant(pool *sched.Pool, C, M *sparse.Matrix, accum *algebra.BinaryOp, val []byte, rowIndices, colIndices []int64, opts ...Option) error {
	desc := NewDescriptor(opts...)

	mask, unmask, err := buildMask(M, desc)
	if err != nil {
		return err
	}
	defer unmask()

	T, err := sparse.New(C.Nrows(), C.Ncols(), C.Type(), sparse.WithOrientation(C.Orientation()))
	if err != nil {
		return err
	}

	for _, row := range rowIndices {
		for _, col := range colIndices {
			if err := T.SetElement(row, col, val); err != nil {
				return err
			}
		}
	}
	if err := T.Wait(); err != nil {
		return err
	}

	return MergeInto(C, mask, accum, T, desc.Replace)
}

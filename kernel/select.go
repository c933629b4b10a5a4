package kernel

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// SelectOp names one of the built-in predicates of spec §4.6. A SelectOp
// evaluates over a position's (row, col, value) regardless of A's storage
// orientation; Select itself maps stored (vector, inner) pairs back to
// (row, col) before calling it.
type SelectOp int

const (
	SelectTriu    SelectOp = iota // row <= col
	SelectTril                    // row >= col
	SelectDiag                    // row == col
	SelectOffdiag                 // row != col
	SelectNonzero                 // value != 0
	SelectEqZero                  // value == 0
	SelectGT                      // value >  thunk
	SelectGE                      // value >= thunk
	SelectLT                      // value <  thunk
	SelectLE                      // value <= thunk
	SelectNE                      // value != thunk
)

// Select computes T = {(i,j,x) in A : predicate(i,j,x)} by the two-phase
// count/write method of spec §4.6: phase 1 counts survivors per vector so
// each vector's output range is known in advance, phase 2 writes every
// vector's survivors directly into its disjoint slice of the output arrays
// with no further synchronization. A must already be materialized and
// read-locked by the caller. thunk, for the comparator ops, must already be
// encoded in A's own Code.
func Select(pool *sched.Pool, A *sparse.Matrix, op SelectOp, thunk []byte) (sparse.CSXBuild, error) {
	nvec := int(A.NVec())
	code := A.Code()
	valSize := A.ValSize()
	byRow := A.Orient() == sparse.ByRow

	counts := make([]int64, nvec)
	pool.ParallelForAtomic(nvec, func(s int) {
		vecIdx := A.VecIndex(s)
		start, end := A.VecBounds(s)
		var n int64
		for pos := start; pos < end; pos++ {
			inner := A.Inner(pos)
			row, col := rowCol(byRow, vecIdx, inner)
			if selectAdmits(op, code, row, col, A.ValueAt(pos), thunk) {
				n++
			}
		}
		counts[s] = n
	})

	p := make([]int64, nvec+1)
	for s := 0; s < nvec; s++ {
		p[s+1] = p[s] + counts[s]
	}
	total := p[nvec]

	ci := make([]int64, total)
	cx := make([]byte, total*int64(valSize))

	pool.ParallelForAtomic(nvec, func(s int) {
		vecIdx := A.VecIndex(s)
		start, end := A.VecBounds(s)
		out := p[s]

		for pos := start; pos < end; pos++ {
			inner := A.Inner(pos)
			row, col := rowCol(byRow, vecIdx, inner)
			if !selectAdmits(op, code, row, col, A.ValueAt(pos), thunk) {
				continue
			}
			ci[out] = inner
			copy(cx[out*int64(valSize):(out+1)*int64(valSize)], A.ValueAt(pos))
			out++
		}
	})

	nrows, ncols := matrixShape(A)

	return sparse.CSXBuild{
		Nrows: nrows, Ncols: ncols, Orient: A.Orient(), Code: code,
		Hyper: A.HyperFlag(), H: A.HArray(), P: p, I: ci, X: cx,
	}, nil
}

// rowCol converts a (vector, inner) compressed-storage pair into true
// (row, col) coordinates, undoing the orientation-dependent swap.
func rowCol(byRow bool, vecIdx, inner int64) (row, col int64) {
	if byRow {
		return vecIdx, inner
	}
	return inner, vecIdx
}

// matrixShape returns A's (nrows, ncols) independent of orientation.
func matrixShape(A *sparse.Matrix) (nrows, ncols int64) {
	vecDim, otherDim := A.Dims()
	if A.Orient() == sparse.ByRow {
		return vecDim, otherDim
	}
	return otherDim, vecDim
}

func selectAdmits(op SelectOp, code algebra.Code, row, col int64, x, thunk []byte) bool {
	switch op {
	case SelectTriu:
		return row <= col
	case SelectTril:
		return row >= col
	case SelectDiag:
		return row == col
	case SelectOffdiag:
		return row != col
	case SelectNonzero:
		return !isZeroValue(code, x)
	case SelectEqZero:
		return isZeroValue(code, x)
	case SelectGT:
		return compareValue(code, x, thunk) > 0
	case SelectGE:
		return compareValue(code, x, thunk) >= 0
	case SelectLT:
		return compareValue(code, x, thunk) < 0
	case SelectLE:
		return compareValue(code, x, thunk) <= 0
	case SelectNE:
		return compareValue(code, x, thunk) != 0
	default:
		return false
	}
}

// isZeroValue reports whether x decodes to the numeric zero of code.
func isZeroValue(code algebra.Code, x []byte) bool {
	dec, err := algebra.DecodeScalar(code, x)
	if err != nil {
		return false // UserDefined: never considered zero.
	}
	switch v := dec.(type) {
	case bool:
		return !v
	case int8:
		return v == 0
	case uint8:
		return v == 0
	case int16:
		return v == 0
	case uint16:
		return v == 0
	case int32:
		return v == 0
	case uint32:
		return v == 0
	case int64:
		return v == 0
	case uint64:
		return v == 0
	case float32:
		return v == 0
	case float64:
		return v == 0
	default:
		return false
	}
}

// compareValue returns a negative, zero, or positive int as x compares less
// than, equal to, or greater than thunk, both decoded under code.
func compareValue(code algebra.Code, x, thunk []byte) int {
	dx, errX := algebra.DecodeScalar(code, x)
	dt, errT := algebra.DecodeScalar(code, thunk)
	if errX != nil || errT != nil {
		return 0
	}

	switch a := dx.(type) {
	case int8:
		return cmpOrdered(a, dt.(int8))
	case uint8:
		return cmpOrdered(a, dt.(uint8))
	case int16:
		return cmpOrdered(a, dt.(int16))
	case uint16:
		return cmpOrdered(a, dt.(uint16))
	case int32:
		return cmpOrdered(a, dt.(int32))
	case uint32:
		return cmpOrdered(a, dt.(uint32))
	case int64:
		return cmpOrdered(a, dt.(int64))
	case uint64:
		return cmpOrdered(a, dt.(uint64))
	case float32:
		return cmpOrdered(a, dt.(float32))
	case float64:
		return cmpOrdered(a, dt.(float64))
	case bool:
		b := dt.(bool)
		if a == b {
			return 0
		}
		if a {
			return 1
		}
		return -1
	default:
		return 0
	}
}

func cmpOrdered[T algebra.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

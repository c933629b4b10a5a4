package kernel

import (
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/dispatch"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// Apply computes T = unary(A) over every live value of A (spec §4.6),
// iterating in parallel chunks over the flattened value array. A must
// already be materialized and read-locked by the caller. T is produced in
// A's own orientation and structure (apply never changes which positions
// are populated).
func Apply(pool *sched.Pool, op *algebra.UnaryOp, A *sparse.Matrix) (sparse.CSXBuild, error) {
	vecDim, otherDim := A.Dims()
	nz := A.NValsUnlocked()

	zsize := op.ZCode.Size()
	out := make([]byte, int(nz)*zsize)

	fast64, ok64 := dispatch.TryUnary[float64](op)
	fast32, ok32 := dispatch.TryUnary[float32](op)

	plan := sched.PlanWork(int(nz), pool.NumWorkers(), 0)
	chunk := max(1, int(nz)/plan.Ntasks)

	pool.ParallelForAtomicBatched(int(nz), chunk, func(start, end int) {
		for pos := start; pos < end; pos++ {
			x := A.ValueAt(int64(pos))
			z := out[pos*zsize : (pos+1)*zsize]

			switch {
			case ok64 && len(z) == 8:
				*(*float64)(unsafe.Pointer(&z[0])) = fast64(*(*float64)(unsafe.Pointer(&x[0])))
			case ok32 && len(z) == 4:
				*(*float32)(unsafe.Pointer(&z[0])) = fast32(*(*float32)(unsafe.Pointer(&x[0])))
			default:
				op.Apply(unsafe.Pointer(&z[0]), unsafe.Pointer(&x[0]))
			}
		}
	})

	nrows, ncols := otherDim, vecDim
	if A.Orient() == sparse.ByRow {
		nrows, ncols = vecDim, otherDim
	}

	return sparse.CSXBuild{
		Nrows: nrows, Ncols: ncols, Orient: A.Orient(), Code: op.ZCode,
		Hyper: A.HyperFlag(), H: A.HArray(), P: A.PArray(), I: A.IArray(), X: out,
	}, nil
}

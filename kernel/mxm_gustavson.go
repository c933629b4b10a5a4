package kernel

import (
	"sort"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// colResult holds one output column's worth of entries, gathered from a
// Sauna workspace in row order, before being concatenated into the final
// compressed output by the caller.
type colResult struct {
	idx []int64
	val []byte
}

// MxMGustavson computes T = A*B under semiring sr using the gather/scatter
// method of spec §4.3. Both A and B must be ByCol-oriented (the caller,
// package ops, is responsible for transposing as needed so that A's and
// B's "vector" is a column); T is produced ByCol as well, matching B's
// orientation.
//
// Mask, if Present, is checked once per scattered row via a per-column
// VectorLookup, skipping both the scatter and the later gather for rejected
// rows (spec: "if M(i,j) is false ... skip scatter").
func MxMGustavson(pool *sched.Pool, saunas *Pool, sr algebra.Semiring, A, B *sparse.Matrix, mask Mask) (sparse.CSXBuild, error) {
	_, innerDim := A.Dims() // A: (ncolsA, nrowsA) -> innerDim = nrowsA = T's row count
	ncolsB, _ := B.Dims()
	zsize := sr.Add.Op.ZCode.Size()

	results := make([]colResult, ncolsB)
	nB := int(B.NVec())

	column := func(slotJ int) {
		j := B.VecIndex(slotJ)
		bStart, bEnd := B.VecBounds(slotJ)

		sauna := saunas.Acquire(int(innerDim), zsize)
		hw := sauna.Begin()
		madd := NewMAdd(sr)

		var vm VectorMask
		if mask.Present() {
			vm = mask.VectorLookup(j)
		}

		touched := make([]int64, 0, bEnd-bStart)
		// frozen marks rows whose running sum has already hit the semiring's
		// add-monoid terminal (spec §4.3's shared contract); once set, further
		// A(i,k)*B(k,j) terms for that row are skipped since no add could
		// change the result.
		frozen := make([]bool, int(innerDim))

		for p := bStart; p < bEnd; p++ {
			k := B.Inner(p)
			bVal := B.ValueAt(p)

			slotK, found := A.FindSlot(k)
			if !found {
				continue
			}
			aStart, aEnd := A.VecBounds(slotK)
			for q := aStart; q < aEnd; q++ {
				i := A.Inner(q)
				if mask.Present() && !vm.Admits(i) {
					continue
				}
				if frozen[i] {
					continue
				}
				aVal := A.ValueAt(q)

				var work []byte
				if !sauna.Occupied(int(i), hw) {
					sauna.Claim(int(i), hw)
					work = sauna.WorkAt(int(i), zsize)
					madd.MulInto(work, aVal, bVal)
					touched = append(touched, i)
				} else {
					work = sauna.WorkAt(int(i), zsize)
					madd.AccumulateInto(work, aVal, bVal)
				}
				if sr.Add.HasTerminal && bytesEqual(work, sr.Add.Terminal) {
					frozen[i] = true
				}
			}
		}

		sort.Slice(touched, func(a, b int) bool { return touched[a] < touched[b] })

		idx := touched
		val := make([]byte, len(idx)*zsize)
		for n, i := range idx {
			copy(val[n*zsize:(n+1)*zsize], sauna.WorkAt(int(i), zsize))
		}
		results[j] = colResult{idx: idx, val: val}

		saunas.Release(sauna, zsize)
	}

	pool.ParallelFor(nB, func(start, end int) {
		for slotJ := start; slotJ < end; slotJ++ {
			column(slotJ)
		}
	})

	return concatColumns(innerDim, ncolsB, sr.Add.Op.ZCode, results)
}

// concatColumns sequentially assembles per-vector results (computed in
// parallel, possibly out of completion order but indexed by real outer-
// vector index) into one CSXBuild oriented as orient, with vecDim outer
// vectors each drawn from the otherDim-sized inner dimension.
func concatColumns(otherDim, vecDim int64, code algebra.Code, results []colResult) (sparse.CSXBuild, error) {
	return concatColumnsOriented(otherDim, vecDim, sparse.ByCol, code, results)
}

func concatColumnsOriented(otherDim, vecDim int64, orient sparse.Orientation, code algebra.Code, results []colResult) (sparse.CSXBuild, error) {
	total := 0
	for _, r := range results {
		total += len(r.idx)
	}

	p := make([]int64, vecDim+1)
	ci := make([]int64, 0, total)
	zsize := code.Size()
	cx := make([]byte, 0, total*zsize)

	for j := int64(0); j < vecDim; j++ {
		r := results[j]
		ci = append(ci, r.idx...)
		cx = append(cx, r.val...)
		p[j+1] = int64(len(ci))
	}

	nrows, ncols := otherDim, vecDim
	if orient == sparse.ByRow {
		nrows, ncols = vecDim, otherDim
	}

	return sparse.CSXBuild{
		Nrows: nrows, Ncols: ncols,
		Orient: orient, Code: code,
		P: p, I: ci, X: cx,
	}, nil
}

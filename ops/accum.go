package ops

import (
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/sparse"
)

// cell is one surviving (inner index, value) pair of a single output
// vector, gathered during MergeInto's linear merge before being
// concatenated into the final compressed arrays.
type cell struct {
	idx int64
	val []byte
}

// MergeInto combines T into C per spec §4.7's accum_mask: an admitted
// position with both a C and a T entry writes accum(C, T) if accum is
// given, else writes T outright (dropping C's old value, even when T has
// no entry there); an admitted C-only entry is therefore kept only when
// accum is non-nil (it is accum's left operand, still pending its other
// side). Entries rejected by the mask keep C's existing value unless
// replace clears them first. T must already share C's shape and
// orientation; the caller (Mxm, EwiseAdd/Mult, Apply, Select, Transpose)
// is responsible for that alignment, matching its responsibility for every
// other operand per spec §7.
//
// The merged result becomes C's new contents via ReplaceWith: C is never
// mutated position-by-position, so a failure partway through building the
// merge leaves C untouched (spec §7's "orchestrator writes to a fresh T and
// only swaps into C at the end").
func MergeInto(C *sparse.Matrix, mask kernel.Mask, accum *algebra.BinaryOp, T *sparse.Matrix, replace bool) error {
	if err := C.EnsureReady(); err != nil {
		return err
	}
	if err := T.EnsureReady(); err != nil {
		return err
	}

	C.RLock()
	T.RLock()

	vecDim, otherDim := C.Dims()
	orient := C.Orient()
	ccode := C.Code()
	valSize := ccode.Size()
	if ccode == algebra.UserDefined {
		valSize = C.UserTypeOf().Size
	}

	results := make([][]cell, vecDim)

	for s := int64(0); s < vecDim; s++ {
		var cStart, cEnd, tStart, tEnd int64
		if slot, found := C.FindSlot(s); found {
			cStart, cEnd = C.VecBounds(slot)
		}
		if slot, found := T.FindSlot(s); found {
			tStart, tEnd = T.VecBounds(slot)
		}

		var vm kernel.VectorMask
		if mask.Present() {
			vm = mask.VectorLookup(s)
		}
		admits := func(i int64) bool { return !mask.Present() || vm.Admits(i) }

		var out []cell
		cp, tp := cStart, tStart

		for cp < cEnd && tp < tEnd {
			ci := C.Inner(cp)
			ti := T.Inner(tp)

			switch {
			case ci < ti:
				if (admits(ci) && accum != nil) || (!admits(ci) && !replace) {
					out = append(out, cell{ci, C.ValueAt(cp)})
				}
				cp++
			case ci > ti:
				if admits(ti) {
					out = append(out, cell{ti, T.ValueAt(tp)})
				}
				tp++
			default:
				if admits(ci) {
					if accum != nil {
						z := make([]byte, valSize)
						accum.Apply(unsafe.Pointer(&z[0]), unsafe.Pointer(&C.ValueAt(cp)[0]), unsafe.Pointer(&T.ValueAt(tp)[0]))
						out = append(out, cell{ci, z})
					} else {
						out = append(out, cell{ci, T.ValueAt(tp)})
					}
				} else if !replace {
					out = append(out, cell{ci, C.ValueAt(cp)})
				}
				cp++
				tp++
			}
		}
		for cp < cEnd {
			ci := C.Inner(cp)
			if (admits(ci) && accum != nil) || (!admits(ci) && !replace) {
				out = append(out, cell{ci, C.ValueAt(cp)})
			}
			cp++
		}
		for tp < tEnd {
			ti := T.Inner(tp)
			if admits(ti) {
				out = append(out, cell{ti, T.ValueAt(tp)})
			}
			tp++
		}

		results[s] = out
	}

	T.RUnlock()
	C.RUnlock()

	total := 0
	for _, r := range results {
		total += len(r)
	}

	p := make([]int64, vecDim+1)
	ci := make([]int64, 0, total)
	cx := make([]byte, 0, total*valSize)
	for s := int64(0); s < vecDim; s++ {
		for _, c := range results[s] {
			ci = append(ci, c.idx)
			cx = append(cx, c.val...)
		}
		p[s+1] = int64(len(ci))
	}

	nrows, ncols := otherDim, vecDim
	if orient == sparse.ByRow {
		nrows, ncols = vecDim, otherDim
	}

	return C.ReplaceWith(sparse.CSXBuild{
		Nrows: nrows, Ncols: ncols, Orient: orient, Code: ccode,
		UserType: C.UserTypeOf(),
		P:        p, I: ci, X: cx,
	})
}

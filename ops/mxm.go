package ops

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// hypersparseDensityThreshold matches sparse.DefaultHyperRatio: a matrix at
// or below this populated/dimension ratio is treated as hypersparse for the
// purposes of AUTO method selection, independent of whether it is currently
// stored in hypersparse form (spec's Testable Property 8 requires storage
// form never to change a result, so AUTO must not either).
const hypersparseDensityThreshold = sparse.DefaultHyperRatio

// Mxm computes C<M> = accum(C, A*B) over semiring sr per spec §4.3/§4.7,
// mutating C in place. A, B, and M (if non-nil) must have compatible
// shapes; Mxm transposes operands as needed (per desc's INP0/INP1:
// TRANSPOSE flags) and re-orients them to whatever each candidate algorithm
// requires before dispatching to package kernel.
func Mxm(pool *sched.Pool, saunas *kernel.Pool, C *sparse.Matrix, M *sparse.Matrix, accum *algebra.BinaryOp, sr algebra.Semiring, A, B *sparse.Matrix, opts ...Option) error {
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

	A.RLock()
	sharedA, nrowsA := A.Dims() // A: (vecDim, otherDim) with ByCol -> (ncols, nrows)
	if A.Orient() == sparse.ByRow {
		sharedA, nrowsA = nrowsA, sharedA
	}
	A.RUnlock()

	B.RLock()
	ncolsB, sharedB := B.Dims() // B: ByCol -> (ncols, nrows)
	if B.Orient() == sparse.ByRow {
		sharedB, ncolsB = ncolsB, sharedB
	}
	B.RUnlock()

	if sharedA != sharedB {
		return sparse.ErrDimensionMismatch
	}
	if C.Nrows() != nrowsA || C.Ncols() != ncolsB {
		return sparse.ErrDimensionMismatch
	}

	method := desc.AxBMethod
	if method == AxBAuto {
		method = chooseAxBMethod(A, B, M)
	}

	mask, unmask, err := buildMask(M, desc)
	if err != nil {
		return err
	}
	defer unmask()

	var build sparse.CSXBuild

	switch method {
	case AxBDot:
		AT, terr := reorient(pool, A, sparse.ByCol)
		if terr != nil {
			return terr
		}
		AT, terr = transposeOf(pool, AT)
		if terr != nil {
			return terr
		}
		Bc, berr := reorient(pool, B, sparse.ByCol)
		if berr != nil {
			return berr
		}

		AT.RLock()
		Bc.RLock()
		build, err = kernel.MxMDotProduct(pool, sr, AT, Bc, mask)
		Bc.RUnlock()
		AT.RUnlock()
	case AxBHeap:
		Ac, aerr := reorient(pool, A, sparse.ByCol)
		if aerr != nil {
			return aerr
		}
		Bc, berr := reorient(pool, B, sparse.ByCol)
		if berr != nil {
			return berr
		}

		Ac.RLock()
		Bc.RLock()
		build, err = kernel.MxMHeapMerge(pool, sr, Ac, Bc, mask)
		Bc.RUnlock()
		Ac.RUnlock()
	default: // AxBGustavson
		Ac, aerr := reorient(pool, A, sparse.ByCol)
		if aerr != nil {
			return aerr
		}
		Bc, berr := reorient(pool, B, sparse.ByCol)
		if berr != nil {
			return berr
		}

		Ac.RLock()
		Bc.RLock()
		build, err = kernel.MxMGustavson(pool, saunas, sr, Ac, Bc, mask)
		Bc.RUnlock()
		Ac.RUnlock()
	}
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

// chooseAxBMethod implements the AUTO cost heuristic of spec §4.3: heap
// merge when both operands are effectively hypersparse, dot product when
// the mask is present and much sparser than a dense output, Gustavson
// otherwise.
func chooseAxBMethod(A, B, M *sparse.Matrix) AxBMethod {
	if isEffectivelyHyper(A) && isEffectivelyHyper(B) {
		return AxBHeap
	}
	if M != nil && isEffectivelyHyper(M) {
		return AxBDot
	}
	return AxBGustavson
}

func isEffectivelyHyper(m *sparse.Matrix) bool {
	m.RLock()
	defer m.RUnlock()

	vecDim, _ := m.Dims()
	if vecDim == 0 {
		return false
	}
	var populated int64
	for k := 0; k < int(m.NVec()); k++ {
		if start, end := m.VecBounds(k); end > start {
			populated++
		}
	}
	return float64(populated) <= float64(vecDim)*hypersparseDensityThreshold
}

// buildMask materializes and read-locks M (if non-nil) and wraps it as a
// kernel.Mask per desc's MASK:STRUCTURE/COMPLEMENT flags. The returned
// unlock func must be deferred by the caller for the lifetime of any use of
// the returned Mask.
func buildMask(M *sparse.Matrix, desc Descriptor) (kernel.Mask, func(), error) {
	if M == nil {
		return kernel.NoMask(), func() {}, nil
	}

	if err := M.EnsureReady(); err != nil {
		return kernel.Mask{}, func() {}, err
	}
	M.RLock()

	return kernel.NewMask(M, desc.MaskStructure, desc.MaskComplement), func() { M.RUnlock() }, nil
}

package ops

import (
	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// reorient returns m if it already has the requested Orientation, or a
// freshly built Matrix with the same logical values stored the other way.
// Flipping a matrix's Orientation tag over its existing arrays with no data
// movement reinterprets it as its own transpose (CSR(A) read as CSC is
// CSC(A')), so producing the *same* matrix in the other orientation needs
// one real transpose of that free-flip: flip, then kernel.Transpose undoes
// the unwanted transposition while landing in the orientation we asked for.
func reorient(pool *sched.Pool, m *sparse.Matrix, target sparse.Orientation) (*sparse.Matrix, error) {
	if err := m.EnsureReady(); err != nil {
		return nil, err
	}
	m.RLock()
	same := m.Orient() == target
	m.RUnlock()
	if same {
		return m, nil
	}

	flipped, err := freeFlip(m)
	if err != nil {
		return nil, err
	}

	flipped.RLock()
	build, err := kernel.Transpose(pool, flipped)
	flipped.RUnlock()
	if err != nil {
		return nil, err
	}

	return sparse.FromCSX(build)
}

// freeFlip reinterprets m's existing arrays under the opposite Orientation
// tag with no data movement, yielding m's mathematical transpose.
func freeFlip(m *sparse.Matrix) (*sparse.Matrix, error) {
	m.RLock()
	defer m.RUnlock()

	vecDim, otherDim := m.Dims()
	nrows, ncols := otherDim, vecDim
	if m.Orient() == sparse.ByRow {
		nrows, ncols = vecDim, otherDim
	}

	return sparse.FromCSX(sparse.CSXBuild{
		Nrows: ncols, Ncols: nrows,
		Orient:   m.Orient().Other(),
		Code:     m.Code(),
		UserType: m.UserTypeOf(),
		Hyper:    m.HyperFlag(),
		H:        m.HArray(),
		P:        m.PArray(),
		I:        m.IArray(),
		X:        m.XArray(),
	})
}

// transposeOf returns a freshly materialized Matrix holding m' (spec
// §4.6), stored in m's own orientation, via one real kernel.Transpose pass.
func transposeOf(pool *sched.Pool, m *sparse.Matrix) (*sparse.Matrix, error) {
	if err := m.EnsureReady(); err != nil {
		return nil, err
	}

	m.RLock()
	build, err := kernel.Transpose(pool, m)
	m.RUnlock()
	if err != nil {
		return nil, err
	}

	return sparse.FromCSX(build)
}


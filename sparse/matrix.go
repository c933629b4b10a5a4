package sparse

import (
	"sync"

	"github.com/srki/GraphBLAS/algebra"
)

// UserType is an alias so callers configuring a user-defined matrix never
// need to import package algebra directly for this one type.
type UserType = algebra.UserType

// BinaryOp aliases algebra.BinaryOp for the same reason.
type BinaryOp = algebra.BinaryOp

// Matrix is a sparse two-dimensional array over a fixed value domain (one of
// algebra.Code's built-ins, or a UserType). All mutation that is not
// immediately reflected in the compressed p/i/x arrays is described in
// pending.go and zombie.go; call Wait (wait.go) to force materialization.
//
// A Matrix is safe for concurrent read access once materialized; mutation
// methods take the write lock and readers take the read lock, but a reader
// that needs the *post-Wait* view must call Wait itself first — concurrent
// mutation and read access to an unmaterialized matrix is the caller's
// responsibility to serialize, exactly as GrB_wait semantics require.
type Matrix struct {
	mu sync.RWMutex

	nrows, ncols int64
	orient       Orientation

	valCode  algebra.Code
	userType *UserType // non-nil iff valCode == algebra.UserDefined

	hyper bool
	h     []int64 // len nvec; h[k] = real vector index of slot k. nil when !hyper.

	// p, i, x describe nvec compressed vectors. p has length nvec+1; vector
	// k's entries are i[p[k]:p[k+1]] (indices) and x[p[k]*valSize:p[k+1]*valSize]
	// (values). i holds zombie entries as their bitwise complement (see
	// zombie.go); such entries are logically absent but still occupy a slot
	// until the next Wait.
	p []int64
	i []int64
	x []byte

	nzombies int64

	pending      []pendingTuple
	pendingOp    *algebra.BinaryOp // combiner for duplicate pending writes; nil => last-write-wins
	pendingLimit int
	hyperRatio   float64
}

// dims returns the size of the compressed dimension (ncols if ByCol, nrows
// if ByRow) and the size of the other (uncompressed-per-vector) dimension.
func (m *Matrix) dims() (nvecDim, otherDim int64) {
	if m.orient == ByCol {
		return m.ncols, m.nrows
	}
	return m.nrows, m.ncols
}

// valSize returns the byte width of one stored value.
func (m *Matrix) valSize() int {
	if m.valCode == algebra.UserDefined {
		return m.userType.Size
	}
	return m.valCode.Size()
}

// New allocates an empty nrows x ncols Matrix over valCode (a built-in
// algebra.Code, or algebra.UserDefined when WithUserType is supplied).
func New(nrows, ncols int64, valCode algebra.Code, opts ...Option) (*Matrix, error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, sparseErrorf("New", ErrBadShape)
	}

	cfg := gatherOptions(opts...)
	if valCode == algebra.UserDefined && cfg.userType == nil {
		return nil, sparseErrorf("New", ErrTypeMismatch)
	}

	m := &Matrix{
		nrows:        nrows,
		ncols:        ncols,
		orient:       cfg.orient,
		valCode:      valCode,
		userType:     cfg.userType,
		pendingLimit: cfg.pendingLimit,
		hyperRatio:   cfg.hyperRatio,
	}

	if cfg.startHyper {
		m.hyper = true
		m.h = []int64{}
		m.p = []int64{0}
	} else {
		nvecDim, _ := m.dims()
		m.p = make([]int64, nvecDim+1)
	}

	return m, nil
}

// Nrows returns the number of rows.
func (m *Matrix) Nrows() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nrows
}

// Ncols returns the number of columns.
func (m *Matrix) Ncols() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ncols
}

// Type returns the matrix's value storage code.
func (m *Matrix) Type() algebra.Code {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.valCode
}

// Orientation returns the matrix's current storage orientation.
func (m *Matrix) Orientation() Orientation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.orient
}

// IsHypersparse reports whether the matrix currently uses hypersparse (h
// indirection) storage. This can change across a Wait call.
func (m *Matrix) IsHypersparse() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hyper
}

// NVals reports the number of logically present entries. If pending writes
// or zombies are outstanding it materializes the matrix first (see Wait in
// wait.go), so the count is always exact.
func (m *Matrix) NVals() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) > 0 || m.nzombies > 0 {
		if err := m.waitLocked(); err != nil {
			return 0, sparseErrorf("NVals", err)
		}
	}

	return int64(len(m.i)), nil
}

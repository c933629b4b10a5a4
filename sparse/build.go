package sparse

import "github.com/srki/GraphBLAS/algebra"

// CSXBuild holds a freshly computed compressed vector-of-vectors, ready to
// become the backing storage of a Matrix with no pending tuples and no
// zombies. Orchestrators in package ops build one of these directly (the
// numeric phase of mxm/ewise/apply/select/transpose all finish with
// strictly sorted per-vector inner indices, per spec §4.3-§4.6's "shared
// contract"), then hand it to FromCSX instead of replaying it through
// SetElement, which would pay for a Wait-time sort that has already
// happened.
type CSXBuild struct {
	Nrows, Ncols int64
	Orient       Orientation
	Code         algebra.Code
	UserType     *UserType

	Hyper bool
	H     []int64 // real vector index per populated slot; nil unless Hyper
	P     []int64 // length nvec+1
	I     []int64 // length P[nvec]; strictly increasing within each vector
	X     []byte  // length len(I)*valSize
}

// FromCSX wraps a CSXBuild as a materialized Matrix with no pending writes
// and no zombies, taking ownership of the slices (callers must not mutate
// them afterward). It does not validate sortedness or bounds; callers are
// the engine's own kernels, which are trusted to produce conforming output
// per the invariants of spec §3.
func FromCSX(b CSXBuild, opts ...Option) (*Matrix, error) {
	if b.Nrows <= 0 || b.Ncols <= 0 {
		return nil, sparseErrorf("FromCSX", ErrBadShape)
	}

	cfg := gatherOptions(opts...)
	if b.Code == algebra.UserDefined && b.UserType == nil {
		return nil, sparseErrorf("FromCSX", ErrTypeMismatch)
	}

	m := &Matrix{
		nrows:        b.Nrows,
		ncols:        b.Ncols,
		orient:       b.Orient,
		valCode:      b.Code,
		userType:     b.UserType,
		hyper:        b.Hyper,
		h:            b.H,
		p:            b.P,
		i:            b.I,
		x:            b.X,
		pendingLimit: cfg.pendingLimit,
		hyperRatio:   cfg.hyperRatio,
	}

	return m, nil
}

// ReplaceWith swaps m's entire compressed storage for b in place, keeping
// m's own identity (pointer) stable while giving it new contents: this is
// what lets an orchestrator build a fresh T and "swap into C at the end"
// (spec §7) without callers losing their *Matrix reference to C. Any
// pending tuples or zombies m was carrying are discarded, since the
// orchestrator's merge already accounts for every entry T needs from C.
func (m *Matrix) ReplaceWith(b CSXBuild) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b.Nrows <= 0 || b.Ncols <= 0 {
		return sparseErrorf("ReplaceWith", ErrBadShape)
	}
	if b.Code == algebra.UserDefined && b.UserType == nil {
		return sparseErrorf("ReplaceWith", ErrTypeMismatch)
	}

	m.nrows = b.Nrows
	m.ncols = b.Ncols
	m.orient = b.Orient
	m.valCode = b.Code
	m.userType = b.UserType
	m.hyper = b.Hyper
	m.h = b.H
	m.p = b.P
	m.i = b.I
	m.x = b.X
	m.pending = nil
	m.nzombies = 0

	return nil
}

// ToCSX materializes m (if needed) and returns a CSXBuild describing its
// current compressed storage. The returned slices alias m's internal
// arrays and must be treated as read-only; callers that want an
// independent copy should Clone first.
func (m *Matrix) ToCSX() (CSXBuild, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) > 0 || m.nzombies > 0 {
		if err := m.waitLocked(); err != nil {
			return CSXBuild{}, sparseErrorf("ToCSX", err)
		}
	}

	return CSXBuild{
		Nrows: m.nrows, Ncols: m.ncols,
		Orient: m.orient, Code: m.valCode, UserType: m.userType,
		Hyper: m.hyper, H: m.h, P: m.p, I: m.i, X: m.x,
	}, nil
}

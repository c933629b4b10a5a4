package sparse

// Clone returns a deep, independent copy of m, with all pending writes and
// zombies already materialized into the copy (the source is also
// materialized as a side effect, since Clone must read a consistent view).
func (m *Matrix) Clone() (*Matrix, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) > 0 || m.nzombies > 0 {
		if err := m.waitLocked(); err != nil {
			return nil, sparseErrorf("Clone", err)
		}
	}

	out := &Matrix{
		nrows:        m.nrows,
		ncols:        m.ncols,
		orient:       m.orient,
		valCode:      m.valCode,
		userType:     m.userType,
		hyper:        m.hyper,
		pendingOp:    m.pendingOp,
		pendingLimit: m.pendingLimit,
		hyperRatio:   m.hyperRatio,
	}

	out.p = append([]int64(nil), m.p...)
	out.i = append([]int64(nil), m.i...)
	out.x = append([]byte(nil), m.x...)
	if m.hyper {
		out.h = append([]int64(nil), m.h...)
	}

	return out, nil
}

// Dup is an alias for Clone, matching the engine's conventional naming for
// "duplicate this matrix" (GrB_Matrix_dup).
func (m *Matrix) Dup() (*Matrix, error) { return m.Clone() }

package sparse

import "github.com/srki/GraphBLAS/algebra"

// SetElement enqueues a write of val at (row, col), deferred until the next
// Wait (explicit or implicit). val must already be encoded in the matrix's
// native byte representation; callers working with Go literals should go
// through algebra.EncodeScalar first, or use SetElementValue.
func (m *Matrix) SetElement(row, col int64, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if row < 0 || row >= m.nrows || col < 0 || col >= m.ncols {
		return sparseErrorf("SetElement", ErrOutOfRange)
	}
	if len(val) != m.valSize() {
		return sparseErrorf("SetElement", ErrUserTypeSize)
	}

	buf := make([]byte, len(val))
	copy(buf, val)
	return m.enqueuePending(row, col, buf)
}

// SetElementValue encodes v as the matrix's storage code and calls
// SetElement. It is the convenience path for built-in-typed matrices.
func (m *Matrix) SetElementValue(row, col int64, v any) error {
	m.mu.RLock()
	code := m.valCode
	m.mu.RUnlock()

	buf, err := algebra.EncodeScalar(code, v)
	if err != nil {
		return sparseErrorf("SetElementValue", err)
	}
	return m.SetElement(row, col, buf)
}

// ExtractElement materializes the matrix (if needed) and returns the value
// stored at (row, col), or ok=false if no entry is present there.
func (m *Matrix) ExtractElement(row, col int64) (val []byte, ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if row < 0 || row >= m.nrows || col < 0 || col >= m.ncols {
		return nil, false, sparseErrorf("ExtractElement", ErrOutOfRange)
	}

	if len(m.pending) > 0 {
		if err := m.waitLocked(); err != nil {
			return nil, false, sparseErrorf("ExtractElement", err)
		}
	}

	vecIdx, within := m.splitCoord(row, col)
	k, found := m.vectorSlot(vecIdx)
	if !found {
		return nil, false, nil
	}

	start, end := m.p[k], m.p[k+1]
	pos := start + int64(searchRow(m.i[start:end], within))
	if pos >= end || m.i[pos] != within {
		return nil, false, nil
	}

	out := make([]byte, m.valSize())
	copy(out, m.valueAt(pos))
	return out, true, nil
}

// ExtractElementValue is ExtractElement decoded via algebra.DecodeScalar.
func (m *Matrix) ExtractElementValue(row, col int64) (v any, ok bool, err error) {
	buf, ok, err := m.ExtractElement(row, col)
	if err != nil || !ok {
		return nil, ok, err
	}

	m.mu.RLock()
	code := m.valCode
	m.mu.RUnlock()

	v, err = algebra.DecodeScalar(code, buf)
	if err != nil {
		return nil, false, sparseErrorf("ExtractElementValue", err)
	}
	return v, true, nil
}

// DeleteElement removes the entry at (row, col), if present, by zombifying
// it; the deletion becomes physical on the next Wait.
func (m *Matrix) DeleteElement(row, col int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if row < 0 || row >= m.nrows || col < 0 || col >= m.ncols {
		return sparseErrorf("DeleteElement", ErrOutOfRange)
	}
	if len(m.pending) > 0 {
		if err := m.waitLocked(); err != nil {
			return sparseErrorf("DeleteElement", err)
		}
	}

	vecIdx, within := m.splitCoord(row, col)
	k, found := m.vectorSlot(vecIdx)
	if !found {
		return nil
	}

	start, end := m.p[k], m.p[k+1]
	pos := int(start) + searchRow(m.i[start:end], within)
	if int64(pos) >= end || m.i[pos] != within {
		return nil
	}

	m.markZombie(pos)
	return nil
}

// searchRow returns the position within a vector's i-slice where within
// would be found or inserted. Entries stay in their original sort position
// across zombification (only their sign flips), so the search compares
// against each entry's real (dezombified) index rather than its raw stored
// value.
func searchRow(i []int64, within int64) int {
	lo, hi := 0, len(i)
	for lo < hi {
		mid := (lo + hi) / 2
		v := i[mid]
		if isZombie(v) {
			v = dezombify(v)
		}
		if v < within {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

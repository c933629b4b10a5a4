package sparse

import "sort"

// vectorSlot returns the compressed-array slot k such that vector vecIdx's
// entries live in p[k]:p[k+1], and whether that vector is populated at all.
// For a non-hypersparse matrix, k == vecIdx always (found=true unconditionally,
// even for an empty vector: p[k]==p[k+1] is a valid empty slice). For a
// hypersparse matrix, k is found via binary search over h, which is kept
// sorted ascending.
func (m *Matrix) vectorSlot(vecIdx int64) (k int, found bool) {
	if !m.hyper {
		return int(vecIdx), true
	}

	j := sort.Search(len(m.h), func(i int) bool { return m.h[i] >= vecIdx })
	if j < len(m.h) && m.h[j] == vecIdx {
		return j, true
	}
	return j, false
}

// nvec returns the number of populated-vector slots currently represented
// (len(h) if hypersparse, else the compressed dimension).
func (m *Matrix) nvec() int64 {
	if m.hyper {
		return int64(len(m.h))
	}
	d, _ := m.dims()
	return d
}

// shouldBeHyper decides the target form for the next Wait, given the
// matrix's current populated-vector count against its compressed dimension.
func (m *Matrix) shouldBeHyper(populated int64) bool {
	if m.hyperRatio <= 0 {
		return m.hyper
	}
	dim, _ := m.dims()
	if dim == 0 {
		return m.hyper
	}
	return float64(populated) <= float64(dim)*m.hyperRatio
}

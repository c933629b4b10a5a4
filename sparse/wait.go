package sparse

import "sort"

// Wait materializes all pending writes and physically drops zombie entries,
// rebuilding the compressed p/i/x (and h, if hypersparse) arrays. Most
// operations in package kernel call this implicitly on their operands before
// reading; callers that mutate a matrix across goroutines without
// synchronizing through kernel entry points should call Wait explicitly
// before sharing it for concurrent read.
func (m *Matrix) Wait() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.waitLocked()
}

// entry is one (index-within-vector, value) pair used while rebuilding a
// single vector's contents during waitLocked.
type entry struct {
	idx int64
	val []byte
}

// waitLocked performs the reconciliation described by Wait. Caller must hold
// the write lock. It is a no-op (but still re-evaluates the hypersparse
// threshold) when there is nothing pending and no zombies.
func (m *Matrix) waitLocked() error {
	vsize := m.valSize()
	nvecDim, _ := m.dims()

	// buckets[v] accumulates every live entry destined for vector v, keyed
	// by the vector's real index (row if ByRow, col if ByCol).
	buckets := make(map[int64][]entry)

	// Seed buckets from currently stored, non-zombie entries.
	for k := 0; k < int(m.nvec()); k++ {
		vecIdx := int64(k)
		if m.hyper {
			vecIdx = m.h[k]
		}
		start, end := m.p[k], m.p[k+1]
		for pos := start; pos < end; pos++ {
			raw := m.i[pos]
			if isZombie(raw) {
				continue
			}
			buckets[vecIdx] = append(buckets[vecIdx], entry{
				idx: raw,
				val: m.x[pos*int64(vsize) : (pos+1)*int64(vsize)],
			})
		}
	}

	// Fold pending tuples in submission order, combining duplicates that
	// land on an existing (vector, index) pair via pendingOp if one is
	// installed, else last-write-wins.
	for _, pt := range m.pending {
		vecIdx, within := m.splitCoord(pt.row, pt.col)
		bucket := buckets[vecIdx]

		merged := false
		for i := range bucket {
			if bucket[i].idx == within {
				bucket[i].val = m.combine(bucket[i].val, pt.val)
				merged = true
				break
			}
		}
		if !merged {
			bucket = append(bucket, entry{idx: within, val: pt.val})
		}
		buckets[vecIdx] = bucket
	}
	m.pending = nil

	// Determine which vectors are populated and whether the result should
	// be hypersparse.
	populated := make([]int64, 0, len(buckets))
	for v, b := range buckets {
		if len(b) > 0 {
			populated = append(populated, v)
		}
	}
	sort.Slice(populated, func(a, b int) bool { return populated[a] < populated[b] })

	hyper := m.shouldBeHyper(int64(len(populated)))

	var nvec int64
	if hyper {
		nvec = int64(len(populated))
	} else {
		nvec = nvecDim
	}

	newP := make([]int64, nvec+1)
	var newH []int64
	if hyper {
		newH = make([]int64, 0, len(populated))
	}

	// Count total live entries up front so i/x can be allocated once.
	var total int64
	for _, v := range populated {
		total += int64(len(buckets[v]))
	}
	newI := make([]int64, 0, total)
	newX := make([]byte, 0, total*int64(vsize))

	if hyper {
		for k, v := range populated {
			newH = append(newH, v)
			b := buckets[v]
			sort.Slice(b, func(a, c int) bool { return b[a].idx < b[c].idx })
			for _, e := range b {
				newI = append(newI, e.idx)
				newX = append(newX, e.val...)
			}
			newP[k+1] = int64(len(newI))
		}
	} else {
		for k := int64(0); k < nvecDim; k++ {
			b := buckets[k]
			sort.Slice(b, func(a, c int) bool { return b[a].idx < b[c].idx })
			for _, e := range b {
				newI = append(newI, e.idx)
				newX = append(newX, e.val...)
			}
			newP[k+1] = int64(len(newI))
		}
	}

	m.hyper = hyper
	m.h = newH
	m.p = newP
	m.i = newI
	m.x = newX
	m.nzombies = 0

	return nil
}

// splitCoord maps a (row, col) pair onto (vector index, within-vector
// index) according to the matrix's orientation.
func (m *Matrix) splitCoord(row, col int64) (vecIdx, within int64) {
	if m.orient == ByCol {
		return col, row
	}
	return row, col
}

// combine folds a new pending value onto an existing one using pendingOp,
// or replaces it outright when no combiner is installed.
func (m *Matrix) combine(oldVal, newVal []byte) []byte {
	if m.pendingOp == nil {
		out := make([]byte, len(newVal))
		copy(out, newVal)
		return out
	}

	out := make([]byte, m.valSize())
	zp := bytesPtr(out)
	xp := bytesPtr(oldVal)
	yp := bytesPtr(newVal)
	m.pendingOp.Apply(zp, xp, yp)
	return out
}

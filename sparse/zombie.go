package sparse

// Zombies mark deferred deletions: rather than shifting i/x on every
// DeleteElement, the entry's stored index is replaced by its bitwise
// complement, which is always negative for a non-negative index and
// trivially distinguishable from any live index. The next Wait physically
// drops zombie slots while rebuilding p/i/x.

func isZombie(idx int64) bool { return idx < 0 }

func zombify(idx int64) int64 { return ^idx }

func dezombify(idx int64) int64 { return ^idx }

// markZombie flags the stored entry at physical slot pos (within i) as
// deleted without shifting any other entry. Caller must hold the write lock
// and guarantee i[pos] currently holds a live index.
func (m *Matrix) markZombie(pos int) {
	if isZombie(m.i[pos]) {
		return
	}
	m.i[pos] = zombify(m.i[pos])
	m.nzombies++
}

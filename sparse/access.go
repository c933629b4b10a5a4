package sparse

import "github.com/srki/GraphBLAS/algebra"

// This file exposes a read-only, post-Wait iteration surface over a
// Matrix's compressed storage for package kernel and package ops, which
// live outside this package and so cannot reach the unexported p/i/x
// fields directly. Every method here assumes the caller already forced
// materialization (EnsureReady, or any method that itself ends in a Wait)
// and holds at least a read lock for the duration of the traversal.

// EnsureReady materializes m if it has pending writes or zombies
// outstanding, restoring invariant (1) of spec §3 before a kernel reads it.
func (m *Matrix) EnsureReady() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) > 0 || m.nzombies > 0 {
		return sparseErrorf("EnsureReady", m.waitLocked())
	}
	return nil
}

// RLock and RUnlock expose the matrix's read lock so a kernel can hold it
// across a whole traversal (VecBounds/Inner/ValueAt are not individually
// synchronized). Callers must call EnsureReady before RLock: no
// materialization happens while the read lock is held.
func (m *Matrix) RLock()   { m.mu.RLock() }
func (m *Matrix) RUnlock() { m.mu.RUnlock() }

// Orient returns the matrix's orientation without taking the lock; callers
// that already hold RLock (every package kernel/ops traversal) must use
// this instead of the public, self-locking Orientation, since sync.RWMutex
// is not safely re-entrant against a concurrent writer.
func (m *Matrix) Orient() Orientation { return m.orient }

// Dims returns (compressed-dimension size, inner-dimension size): (ncols,
// nrows) for ByCol, (nrows, ncols) for ByRow. Caller must hold RLock.
func (m *Matrix) Dims() (nvecDim, otherDim int64) { return m.dims() }

// ValSize returns the byte width of one stored value. Caller must hold
// RLock.
func (m *Matrix) ValSize() int { return m.valSize() }

// UserTypeOf returns the matrix's UserType descriptor, or nil if the
// matrix is over a built-in Code.
func (m *Matrix) UserTypeOf() *UserType { return m.userType }

// NVec returns the number of populated-vector slots in the compressed
// storage: len(h) if hypersparse, else the compressed dimension. Caller
// must hold RLock.
func (m *Matrix) NVec() int64 { return m.nvec() }

// VecIndex returns the real outer-vector index (row or column, depending
// on orientation) stored at compressed slot k. Caller must hold RLock.
func (m *Matrix) VecIndex(k int) int64 {
	if m.hyper {
		return m.h[k]
	}
	return int64(k)
}

// VecBounds returns the half-open [start, end) range in Inner/ValueAt
// occupied by compressed slot k's entries. Caller must hold RLock.
func (m *Matrix) VecBounds(k int) (start, end int64) {
	return m.p[k], m.p[k+1]
}

// FindSlot locates the compressed slot for outer-vector index vecIdx,
// reporting found=false if that vector has no populated slot (always true
// for a non-hypersparse matrix, since every index in range has a slot even
// if empty). Caller must hold RLock.
func (m *Matrix) FindSlot(vecIdx int64) (slot int, found bool) {
	return m.vectorSlot(vecIdx)
}

// Inner returns the inner index stored at physical position pos. It does
// not check for zombies: a zombie slot yields its negative stored form.
// Callers only reach live positions after EnsureReady, which compacts
// zombies out. Caller must hold RLock.
func (m *Matrix) Inner(pos int64) int64 { return m.i[pos] }

// ValueAt returns the raw value bytes at physical position pos, aliasing
// the matrix's internal storage. Caller must not mutate the returned
// slice and must hold RLock for its lifetime.
func (m *Matrix) ValueAt(pos int64) []byte { return m.valueAt(pos) }

// SearchInner returns the position within [start, end) where inner index
// within is found, or where it would be inserted if absent. Caller must
// hold RLock.
func (m *Matrix) SearchInner(start, end int64, within int64) int64 {
	return start + int64(searchRow(m.i[start:end], within))
}

// Code returns the matrix's algebra.Code; identical to Type but named for
// symmetry with the rest of this file's short accessor names.
func (m *Matrix) Code() algebra.Code { return m.valCode }

// HyperFlag reports whether the matrix is currently hypersparse, without
// taking the lock. Caller must hold RLock.
func (m *Matrix) HyperFlag() bool { return m.hyper }

// PArray, IArray and HArray return the matrix's raw compressed vector-
// pointer, inner-index, and hypersparse-indirection arrays, aliasing
// internal storage. A kernel that preserves A's structure exactly (Apply)
// may reuse these directly in its own output instead of rebuilding them,
// since waitLocked always replaces these slices wholesale rather than
// mutating them in place. Caller must hold RLock and must not mutate the
// returned slices.
func (m *Matrix) PArray() []int64 { return m.p }
func (m *Matrix) IArray() []int64 { return m.i }
func (m *Matrix) HArray() []int64 { return m.h }

// XArray returns the matrix's raw flattened value bytes, under the same
// aliasing contract as PArray/IArray/HArray.
func (m *Matrix) XArray() []byte { return m.x }

// NValsUnlocked returns the number of live entries without taking the lock
// or materializing; caller must already know the matrix has no pending
// writes or zombies (e.g. just called EnsureReady) and hold RLock.
func (m *Matrix) NValsUnlocked() int64 { return int64(len(m.i)) }

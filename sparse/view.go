package sparse

import "unsafe"

// bytesPtr returns a pointer to b's first byte. b must be non-empty; every
// call site here operates on a value buffer of a matrix's fixed, positive
// valSize, so this is never called with an empty slice.
func bytesPtr(b []byte) unsafe.Pointer {
	return unsafe.Pointer(&b[0])
}

// valueAt returns a byte slice aliasing the pos-th stored value. Caller
// must hold at least the read lock and know pos is a live (non-zombie)
// slot.
func (m *Matrix) valueAt(pos int64) []byte {
	vsize := int64(m.valSize())
	return m.x[pos*vsize : (pos+1)*vsize]
}

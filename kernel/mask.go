package kernel

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sparse"
)

// Mask wraps an optional mask Matrix M with the structure/complement
// flags of spec §4.2's Descriptor and the GLOSSARY's Mask entry: with
// Structure, only presence in M matters (any stored value, zero or not,
// admits); otherwise M's value is interpreted as a boolean (cast through
// algebra's Bool rules: nonzero admits). Complement inverts the decision.
//
// A nil Mask (via NoMask) always admits every position, matching spec
// Testable Property 4 ("mxm with M=None == mxm with M=all_ones").
type Mask struct {
	m          *sparse.Matrix
	structure  bool
	complement bool
}

// NoMask returns the always-admit mask.
func NoMask() Mask { return Mask{} }

// NewMask wraps m under the given structure/complement flags. m must
// already be materialized (EnsureReady) before any Admits call; orchestrators
// in package ops are responsible for that, matching their responsibility for
// every other operand.
func NewMask(m *sparse.Matrix, structure, complement bool) Mask {
	return Mask{m: m, structure: structure, complement: complement}
}

// Present reports whether this Mask actually restricts anything.
func (mk Mask) Present() bool { return mk.m != nil }

// unwrap returns the underlying mask Matrix, for callers (dotWithMask) that
// need to walk its structure directly rather than query it position by
// position.
func (mk Mask) unwrap() *sparse.Matrix { return mk.m }

// VectorLookup pre-locates mask matrix mk's compressed slot for outer
// vector index vecIdx once per output vector, per spec §4.4 ("the mask's
// vector is pre-located by hypersparse lookup"), returning a VectorMask a
// caller can query cheaply per inner index without repeating the
// hypersparse binary search. The caller must hold mk.m's read lock (via
// sparse.Matrix.RLock) for the lifetime of the returned VectorMask.
func (mk Mask) VectorLookup(vecIdx int64) VectorMask {
	if mk.m == nil {
		return VectorMask{mask: mk}
	}

	slot, found := mk.m.FindSlot(vecIdx)
	if !found {
		// No entries in this vector at all: every position is rejected
		// unless complemented, in which case every position is admitted.
		return VectorMask{mask: mk, empty: true}
	}

	start, end := mk.m.VecBounds(slot)
	return VectorMask{mask: mk, start: start, end: end, hasSlot: true}
}

// VectorMask is Mask narrowed to one already-located outer vector, giving
// O(log deg) lookups per inner index via binary search (spec §4.4) instead
// of re-locating the vector slot each time.
type VectorMask struct {
	mask    Mask
	hasSlot bool
	empty   bool
	start   int64
	end     int64
}

// Admits reports whether inner index within passes this mask, including
// the complement flip. Caller must hold mk's underlying matrix's read lock.
func (vm VectorMask) Admits(within int64) bool {
	if !vm.mask.Present() {
		return true
	}

	admit := vm.rawAdmit(within)
	if vm.mask.complement {
		return !admit
	}
	return admit
}

func (vm VectorMask) rawAdmit(within int64) bool {
	if vm.empty || !vm.hasSlot {
		return false
	}

	m := vm.mask.m
	pos := m.SearchInner(vm.start, vm.end, within)
	if pos >= vm.end || m.Inner(pos) != within {
		return false
	}
	if vm.mask.structure {
		return true
	}

	return valueIsTrue(m, pos)
}

// valueIsTrue interprets the mask value at pos as a boolean per the cast
// rule "nonzero admits": a Bool-typed mask reads its byte directly, any
// other built-in numeric mask is nonzero-tested via algebra.DecodeScalar.
func valueIsTrue(m *sparse.Matrix, pos int64) bool {
	code := m.Code()
	v := m.ValueAt(pos)

	if code == algebra.Bool {
		return v[0] != 0
	}

	dec, err := algebra.DecodeScalar(code, v)
	if err != nil {
		return true // UserDefined or undecodable: presence alone admits.
	}
	switch x := dec.(type) {
	case bool:
		return x
	case int8:
		return x != 0
	case uint8:
		return x != 0
	case int16:
		return x != 0
	case uint16:
		return x != 0
	case int32:
		return x != 0
	case uint32:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

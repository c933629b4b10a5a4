package kernel

import (
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/dispatch"
)

// MAdd is the shared "z = add(z, mul(a, b))" primitive every mxm algorithm
// folds over the shared index k (spec §4.3). It is built once per
// semiring/operand-type combination so the inner (i, k) loop never
// re-decides which path to use; NewMAdd chooses between a typed Go closure
// (the specialized path of spec §4.2) and a byte-pointer call through
// algebra.BinaryOp.Apply (the generic path) exactly once.
type MAdd struct {
	ZSize, XSize, YSize int

	// mulApply/addApply are always set; they are correct for every
	// semiring, built-in or user-defined, and are what MulInto,
	// AccumulateInto and Reduce call when the typed fast path below does
	// not apply.
	mulApply func(z, x, y unsafe.Pointer)
	addApply func(z, x, y unsafe.Pointer)

	// fast64/fast32 hold a typed fast path when the semiring's add/mul are
	// both specializable over float64 or float32 respectively (the built-in
	// combination spec §9 calls out as worth hand-tuning: PLUS_TIMES and the
	// tropical MIN_PLUS/MAX_PLUS semirings are all FP64 or FP32 in common
	// use). useFast names which, if either, applies.
	fast64   func(acc, x, y float64) float64
	fast32   func(acc, x, y float32) float32
	useFast  fastKind
	Identity []byte
}

type fastKind int

const (
	fastNone fastKind = iota
	fastFP64
	fastFP32
)

// NewMAdd builds the multiply-add primitive for one semiring.
func NewMAdd(sr algebra.Semiring) *MAdd {
	m := &MAdd{
		ZSize:    sr.Add.Op.ZCode.Size(),
		XSize:    sr.Mul.XCode.Size(),
		YSize:    sr.Mul.YCode.Size(),
		mulApply: sr.Mul.Apply,
		addApply: sr.Add.Op.Apply,
		Identity: sr.Add.Identity,
	}

	if mf, ok1 := dispatch.TryBinary[float64](sr.Mul); ok1 {
		if af, ok2 := dispatch.TryBinary[float64](sr.Add.Op); ok2 {
			m.fast64 = func(acc, x, y float64) float64 { return af(acc, mf(x, y)) }
			m.useFast = fastFP64
			return m
		}
	}
	if mf, ok1 := dispatch.TryBinary[float32](sr.Mul); ok1 {
		if af, ok2 := dispatch.TryBinary[float32](sr.Add.Op); ok2 {
			m.fast32 = func(acc, x, y float32) float32 { return af(acc, mf(x, y)) }
			m.useFast = fastFP32
			return m
		}
	}

	return m
}

// MulInto computes z = mul(x, y) (no accumulation), writing ZSize bytes to
// z. Used to initialize a previously-empty accumulator slot.
func (m *MAdd) MulInto(z, x, y []byte) {
	m.mulApply(unsafe.Pointer(&z[0]), unsafe.Pointer(&x[0]), unsafe.Pointer(&y[0]))
}

// AccumulateInto computes z = add(z, mul(x, y)) in place, for a slot that
// already holds a live partial sum. Dispatches to the typed fast path when
// one was found at construction, else calls through the byte-pointer
// generic path.
func (m *MAdd) AccumulateInto(z, x, y []byte) {
	switch m.useFast {
	case fastFP64:
		zv := *(*float64)(unsafe.Pointer(&z[0]))
		xv := *(*float64)(unsafe.Pointer(&x[0]))
		yv := *(*float64)(unsafe.Pointer(&y[0]))
		*(*float64)(unsafe.Pointer(&z[0])) = m.fast64(zv, xv, yv)
	case fastFP32:
		zv := *(*float32)(unsafe.Pointer(&z[0]))
		xv := *(*float32)(unsafe.Pointer(&x[0]))
		yv := *(*float32)(unsafe.Pointer(&y[0]))
		*(*float32)(unsafe.Pointer(&z[0])) = m.fast32(zv, xv, yv)
	default:
		buf := make([]byte, m.ZSize)
		m.mulApply(unsafe.Pointer(&buf[0]), unsafe.Pointer(&x[0]), unsafe.Pointer(&y[0]))
		m.addApply(unsafe.Pointer(&z[0]), unsafe.Pointer(&z[0]), unsafe.Pointer(&buf[0]))
	}
}

// Reduce computes dst = add(dst, src) directly, folding two already-
// multiplied values together without a multiply step. It always calls
// through the byte-pointer add, never the typed fast path.
func (m *MAdd) Reduce(dst, src []byte) {
	m.addApply(unsafe.Pointer(&dst[0]), unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]))
}

package algebra

import "unsafe"

// Numeric constrains the built-in scalar Go types a specialized arithmetic
// kernel may be instantiated over. Bool is deliberately excluded: it has no
// arithmetic (+, -, *, <, >), so boolean operators (LOR, LAND, LXOR, LNOT)
// are written directly as concrete BinaryOp/UnaryOp literals instead of
// through the generic wrapBinary/wrapUnary helpers below.
type Numeric interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// BinaryOp is an immutable binary operator z = op(x, y). XCode and YCode
// name the operand storage types, ZCode the result storage type; for every
// built-in semiring in this package XCode == YCode == ZCode, but the type is
// kept general so user-defined mixed-domain operators remain representable.
//
// Apply operates on raw storage: it reads one XCode-sized value at x, one
// YCode-sized value at y, and writes one ZCode-sized value at z. This is the
// function-pointer shape spec §3 calls fn: (z*, x*, y*) -> (), and it is what
// the generic fallback kernels in package kernel call directly. Specialized
// kernels instead call a type-asserted Go closure obtained via AsBinaryFunc,
// avoiding the unsafe.Pointer indirection on the hot path.
type BinaryOp struct {
	Name                string
	Opcode              Opcode
	XCode, YCode, ZCode Code
	Apply               func(z, x, y unsafe.Pointer)

	// typed, if non-nil, is the same computation as a boxed Go closure for
	// the exact built-in type; AsBinaryFunc type-asserts it back out
	// (AsComparatorFunc for the Bool-valued comparators).
	typed any
}

// wrapBinary builds the byte-level Apply closure for a same-typed built-in
// binary operator from a plain Go generic function, and keeps the typed
// closure around for specialized-kernel fast paths.
func wrapBinary[T Numeric](code Code, name string, opcode Opcode, fn func(x, y T) T) *BinaryOp {
	return &BinaryOp{
		Name:   name,
		Opcode: opcode,
		XCode:  code,
		YCode:  code,
		ZCode:  code,
		Apply: func(z, x, y unsafe.Pointer) {
			*(*T)(z) = fn(*(*T)(x), *(*T)(y))
		},
		typed: fn,
	}
}

// AsBinaryFunc type-asserts op's typed closure back to func(x, y T) T,
// for the arithmetic operators and for the Bool operators LOR/LAND/LXOR
// (T = bool). It reports ok=false for user-defined operators or a type
// mismatch, in which case callers must fall back to op.Apply.
func AsBinaryFunc[T Numeric | ~bool](op *BinaryOp) (fn func(x, y T) T, ok bool) {
	fn, ok = op.typed.(func(x, y T) T)
	return fn, ok
}

// AsComparatorFunc type-asserts a comparator's typed closure back to
// func(x, y T) bool. It reports ok=false for non-comparator operators or a
// type mismatch, in which case callers must fall back to op.Apply.
func AsComparatorFunc[T Ordered](op *BinaryOp) (fn func(x, y T) bool, ok bool) {
	fn, ok = op.typed.(func(x, y T) bool)
	return fn, ok
}

func genericPlus[T Numeric](x, y T) T   { return x + y }
func genericMinus[T Numeric](x, y T) T  { return x - y }
func genericTimes[T Numeric](x, y T) T  { return x * y }
func genericFirst[T Numeric](x, y T) T  { return x }
func genericSecond[T Numeric](x, y T) T { return y }

func genericMin[T Numeric](x, y T) T {
	if x < y {
		return x
	}
	return y
}

func genericMax[T Numeric](x, y T) T {
	if x > y {
		return x
	}
	return y
}

func lorFn(x, y bool) bool  { return x || y }
func landFn(x, y bool) bool { return x && y }
func lxorFn(x, y bool) bool { return x != y }

// PlusOp returns PLUS for the given built-in numeric code.
func PlusOp(code Code) *BinaryOp {
	switch code {
	case Int8:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[int8])
	case UInt8:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[uint8])
	case Int16:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[int16])
	case UInt16:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[uint16])
	case Int32:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[int32])
	case UInt32:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[uint32])
	case Int64:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[int64])
	case UInt64:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[uint64])
	case FP32:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[float32])
	case FP64:
		return wrapBinary(code, "PLUS", OpPlus, genericPlus[float64])
	default:
		return nil
	}
}

// MinusOp returns MINUS for the given built-in numeric code.
func MinusOp(code Code) *BinaryOp {
	switch code {
	case Int8:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[int8])
	case UInt8:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[uint8])
	case Int16:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[int16])
	case UInt16:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[uint16])
	case Int32:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[int32])
	case UInt32:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[uint32])
	case Int64:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[int64])
	case UInt64:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[uint64])
	case FP32:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[float32])
	case FP64:
		return wrapBinary(code, "MINUS", OpMinus, genericMinus[float64])
	default:
		return nil
	}
}

// TimesOp returns TIMES for the given built-in numeric code.
func TimesOp(code Code) *BinaryOp {
	switch code {
	case Int8:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[int8])
	case UInt8:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[uint8])
	case Int16:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[int16])
	case UInt16:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[uint16])
	case Int32:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[int32])
	case UInt32:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[uint32])
	case Int64:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[int64])
	case UInt64:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[uint64])
	case FP32:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[float32])
	case FP64:
		return wrapBinary(code, "TIMES", OpTimes, genericTimes[float64])
	default:
		return nil
	}
}

// MinOp returns MIN for the given built-in numeric code.
func MinOp(code Code) *BinaryOp {
	switch code {
	case Int8:
		return wrapBinary(code, "MIN", OpMin, genericMin[int8])
	case UInt8:
		return wrapBinary(code, "MIN", OpMin, genericMin[uint8])
	case Int16:
		return wrapBinary(code, "MIN", OpMin, genericMin[int16])
	case UInt16:
		return wrapBinary(code, "MIN", OpMin, genericMin[uint16])
	case Int32:
		return wrapBinary(code, "MIN", OpMin, genericMin[int32])
	case UInt32:
		return wrapBinary(code, "MIN", OpMin, genericMin[uint32])
	case Int64:
		return wrapBinary(code, "MIN", OpMin, genericMin[int64])
	case UInt64:
		return wrapBinary(code, "MIN", OpMin, genericMin[uint64])
	case FP32:
		return wrapBinary(code, "MIN", OpMin, genericMin[float32])
	case FP64:
		return wrapBinary(code, "MIN", OpMin, genericMin[float64])
	default:
		return nil
	}
}

// MaxOp returns MAX for the given built-in numeric code.
func MaxOp(code Code) *BinaryOp {
	switch code {
	case Int8:
		return wrapBinary(code, "MAX", OpMax, genericMax[int8])
	case UInt8:
		return wrapBinary(code, "MAX", OpMax, genericMax[uint8])
	case Int16:
		return wrapBinary(code, "MAX", OpMax, genericMax[int16])
	case UInt16:
		return wrapBinary(code, "MAX", OpMax, genericMax[uint16])
	case Int32:
		return wrapBinary(code, "MAX", OpMax, genericMax[int32])
	case UInt32:
		return wrapBinary(code, "MAX", OpMax, genericMax[uint32])
	case Int64:
		return wrapBinary(code, "MAX", OpMax, genericMax[int64])
	case UInt64:
		return wrapBinary(code, "MAX", OpMax, genericMax[uint64])
	case FP32:
		return wrapBinary(code, "MAX", OpMax, genericMax[float32])
	case FP64:
		return wrapBinary(code, "MAX", OpMax, genericMax[float64])
	default:
		return nil
	}
}

// FirstOp returns FIRST(x,y)=x for the given built-in numeric code.
func FirstOp(code Code) *BinaryOp {
	switch code {
	case Int32:
		return wrapBinary(code, "FIRST", OpFirst, genericFirst[int32])
	case Int64:
		return wrapBinary(code, "FIRST", OpFirst, genericFirst[int64])
	case FP32:
		return wrapBinary(code, "FIRST", OpFirst, genericFirst[float32])
	case FP64:
		return wrapBinary(code, "FIRST", OpFirst, genericFirst[float64])
	default:
		return nil
	}
}

// SecondOp returns SECOND(x,y)=y for the given built-in numeric code.
func SecondOp(code Code) *BinaryOp {
	switch code {
	case Int32:
		return wrapBinary(code, "SECOND", OpSecond, genericSecond[int32])
	case Int64:
		return wrapBinary(code, "SECOND", OpSecond, genericSecond[int64])
	case FP32:
		return wrapBinary(code, "SECOND", OpSecond, genericSecond[float32])
	case FP64:
		return wrapBinary(code, "SECOND", OpSecond, genericSecond[float64])
	default:
		return nil
	}
}

// boolBinary builds a Bool×Bool->Bool BinaryOp literal directly; Bool has no
// arithmetic, so it cannot go through the generic Numeric-constrained
// wrapBinary helper used by the arithmetic operators above.
func boolBinary(name string, opcode Opcode, fn func(x, y bool) bool) *BinaryOp {
	return &BinaryOp{
		Name:   name,
		Opcode: opcode,
		XCode:  Bool,
		YCode:  Bool,
		ZCode:  Bool,
		Apply: func(z, x, y unsafe.Pointer) {
			*(*bool)(z) = fn(*(*bool)(x), *(*bool)(y))
		},
		typed: fn,
	}
}

// LogicalOrOp returns LOR over Bool.
func LogicalOrOp() *BinaryOp { return boolBinary("LOR", OpLogicalOr, lorFn) }

// LogicalAndOp returns LAND over Bool.
func LogicalAndOp() *BinaryOp { return boolBinary("LAND", OpLogicalAnd, landFn) }

// LogicalXorOp returns LXOR over Bool.
func LogicalXorOp() *BinaryOp { return boolBinary("LXOR", OpLogicalXor, lxorFn) }

// comparator builds a comparator BinaryOp producing a Bool result from two
// same-typed numeric operands, used by both select-by-thunk (§4.6) and as a
// general-purpose operator for user semirings.
func comparator[T Numeric](code Code, name string, opcode Opcode, cmp func(x, y T) bool) *BinaryOp {
	return &BinaryOp{
		Name:   name,
		Opcode: opcode,
		XCode:  code,
		YCode:  code,
		ZCode:  Bool,
		Apply: func(z, x, y unsafe.Pointer) {
			*(*bool)(z) = cmp(*(*T)(x), *(*T)(y))
		},
		typed: cmp,
	}
}

// Ordered constrains the built-in numeric types that support native <, <=,
// ==, >=, > comparisons (everything Numeric allows except bool).
type Ordered interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

func gtFn[T Ordered](x, y T) bool { return x > y }
func geFn[T Ordered](x, y T) bool { return x >= y }
func ltFn[T Ordered](x, y T) bool { return x < y }
func leFn[T Ordered](x, y T) bool { return x <= y }
func eqFn[T Ordered](x, y T) bool { return x == y }
func neFn[T Ordered](x, y T) bool { return x != y }

// GtOp, GeOp, LtOp, LeOp, EqOp, NeOp return the named comparator for the
// given built-in numeric code; the result is always Bool. Each operand is
// compared natively in its own type, never bridged through float64 (which
// would be lossy for Int64/UInt64).
func GtOp(code Code) *BinaryOp { return orderedComparator(code, "GT", OpGt, gtKind) }
func GeOp(code Code) *BinaryOp { return orderedComparator(code, "GE", OpGe, geKind) }
func LtOp(code Code) *BinaryOp { return orderedComparator(code, "LT", OpLt, ltKind) }
func LeOp(code Code) *BinaryOp { return orderedComparator(code, "LE", OpLe, leKind) }
func EqOp(code Code) *BinaryOp { return orderedComparator(code, "EQ", OpEq, eqKind) }
func NeOp(code Code) *BinaryOp { return orderedComparator(code, "NE", OpNe, neKind) }

type cmpKind int

const (
	gtKind cmpKind = iota
	geKind
	ltKind
	leKind
	eqKind
	neKind
)

// orderedComparator instantiates the requested comparator generically for
// whichever built-in numeric Code is requested.
func orderedComparator(code Code, name string, opcode Opcode, kind cmpKind) *BinaryOp {
	switch code {
	case Int8:
		return comparator(code, name, opcode, pick[int8](kind))
	case UInt8:
		return comparator(code, name, opcode, pick[uint8](kind))
	case Int16:
		return comparator(code, name, opcode, pick[int16](kind))
	case UInt16:
		return comparator(code, name, opcode, pick[uint16](kind))
	case Int32:
		return comparator(code, name, opcode, pick[int32](kind))
	case UInt32:
		return comparator(code, name, opcode, pick[uint32](kind))
	case Int64:
		return comparator(code, name, opcode, pick[int64](kind))
	case UInt64:
		return comparator(code, name, opcode, pick[uint64](kind))
	case FP32:
		return comparator(code, name, opcode, pick[float32](kind))
	case FP64:
		return comparator(code, name, opcode, pick[float64](kind))
	default:
		return nil
	}
}

func pick[T Ordered](kind cmpKind) func(x, y T) bool {
	switch kind {
	case gtKind:
		return gtFn[T]
	case geKind:
		return geFn[T]
	case ltKind:
		return ltFn[T]
	case leKind:
		return leFn[T]
	case eqKind:
		return eqFn[T]
	default:
		return neFn[T]
	}
}

package algebra

import "math"

// Monoid pairs a commutative, associative BinaryOp with its identity value,
// and optionally a terminal value. Identity and Terminal are stored as raw
// bytes in Op.ZCode's native encoding so the reduction kernels (package
// kernel) can splat them into a workspace without any type switch.
//
// Terminal enables early-exit reduction (spec §4.4): once an accumulator
// reaches the terminal value, no further combination can change it, so a
// parallel reduction may stop scanning. HasTerminal is false for monoids
// with no absorbing element (e.g. PLUS).
type Monoid struct {
	Op          *BinaryOp
	Identity    []byte
	Terminal    []byte
	HasTerminal bool
}

// newMonoid encodes id (and, if present, terminal) in op.ZCode's native
// representation. Panics on an encoding error since all callers below pass
// literal Go constants matched to op's own ZCode; a failure here is a bug in
// this file, not a reachable runtime condition.
func newMonoid(op *BinaryOp, id any, terminal any, hasTerminal bool) Monoid {
	idBuf, err := EncodeScalar(op.ZCode, id)
	if err != nil {
		panic(algebraErrorf("newMonoid", err))
	}

	m := Monoid{Op: op, Identity: idBuf, HasTerminal: hasTerminal}
	if hasTerminal {
		termBuf, err := EncodeScalar(op.ZCode, terminal)
		if err != nil {
			panic(algebraErrorf("newMonoid", err))
		}
		m.Terminal = termBuf
	}

	return m
}

// PlusMonoid returns (PLUS, 0) over the given built-in numeric code. PLUS has
// no terminal: every value can still change an accumulator.
func PlusMonoid(code Code) Monoid {
	return newMonoid(PlusOp(code), zeroOf(code), nil, false)
}

// TimesMonoid returns (TIMES, 1) over the given built-in numeric code. TIMES
// is terminal at 0 for built-in numeric types (no NaN/Inf short-circuit is
// assumed for floats; 0 is absorbing under ordinary multiplication).
func TimesMonoid(code Code) Monoid {
	return newMonoid(TimesOp(code), oneOf(code), zeroOf(code), true)
}

// MinMonoid returns (MIN, +maxVal) over code, terminal at code's minimum
// representable value.
func MinMonoid(code Code) Monoid {
	return newMonoid(MinOp(code), maxOf(code), minOf(code), true)
}

// MaxMonoid returns (MAX, -maxVal) over code, terminal at code's maximum
// representable value.
func MaxMonoid(code Code) Monoid {
	return newMonoid(MaxOp(code), minOf(code), maxOf(code), true)
}

// LorMonoid returns (LOR, false) over Bool, terminal at true.
func LorMonoid() Monoid {
	return newMonoid(LogicalOrOp(), false, true, true)
}

// LandMonoid returns (LAND, true) over Bool, terminal at false.
func LandMonoid() Monoid {
	return newMonoid(LogicalAndOp(), true, false, true)
}

func zeroOf(code Code) any {
	switch code {
	case Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64:
		return int64(0)
	case FP32, FP64:
		return float64(0)
	default:
		return int64(0)
	}
}

func oneOf(code Code) any {
	switch code {
	case FP32, FP64:
		return float64(1)
	default:
		return int64(1)
	}
}

func minOf(code Code) any {
	switch code {
	case Int8:
		return int64(math.MinInt8)
	case Int16:
		return int64(math.MinInt16)
	case Int32:
		return int64(math.MinInt32)
	case Int64:
		return int64(math.MinInt64)
	case UInt8, UInt16, UInt32, UInt64:
		return int64(0)
	case FP32:
		return float64(-math.MaxFloat32)
	case FP64:
		return -math.MaxFloat64
	default:
		return int64(0)
	}
}

func maxOf(code Code) any {
	switch code {
	case Int8:
		return int64(math.MaxInt8)
	case Int16:
		return int64(math.MaxInt16)
	case Int32:
		return int64(math.MaxInt32)
	case Int64:
		return int64(math.MaxInt64)
	case UInt8:
		return int64(math.MaxUint8)
	case UInt16:
		return int64(math.MaxUint16)
	case UInt32:
		return int64(math.MaxUint32)
	case UInt64:
		return uint64(math.MaxUint64)
	case FP32:
		return float64(math.MaxFloat32)
	case FP64:
		return math.MaxFloat64
	default:
		return int64(0)
	}
}
